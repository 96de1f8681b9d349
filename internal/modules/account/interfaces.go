package account

import (
	"context"
	"time"

	"courtwatch/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, a *domain.ConnectedAccount) error
	GetByID(ctx context.Context, id string) (*domain.ConnectedAccount, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.ConnectedAccount, error)
	ListActive(ctx context.Context) ([]domain.ConnectedAccount, error)
	Update(ctx context.Context, a *domain.ConnectedAccount) error
	TouchLastUsed(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
