package account

import (
	"context"
	"errors"
	"time"

	"courtwatch/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service manages the pool of connected external accounts and hands
// them out for booking placement, least-recently-used first.
type Service struct {
	repo AccountRepository
	now  func() time.Time
}

func NewService(repo AccountRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// PickAccount returns the ID of the account to book with. Accounts in
// the error state are never picked. The pick is recorded so rotation
// spreads load across the pool.
func (s *Service) PickAccount(ctx context.Context) (string, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return "", err
	}
	if len(active) == 0 {
		return "", ErrNoUsableAccount
	}
	picked := active[0]
	if err := s.repo.TouchLastUsed(ctx, picked.ID, s.now()); err != nil {
		return "", err
	}
	return picked.ID, nil
}

func (s *Service) Add(ctx context.Context, userID int64, req AddAccountRequest) (*domain.ConnectedAccount, error) {
	if req.Name == "" || req.Username == "" || req.Password == "" {
		return nil, ErrValidation
	}
	a := &domain.ConnectedAccount{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Status:   domain.AccountActive,
		AddedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.ConnectedAccount, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SetStatus flips an account between active and error. Error accounts
// drop out of the pick rotation until reset.
func (s *Service) SetStatus(ctx context.Context, userID int64, id string, status string) (*domain.ConnectedAccount, error) {
	st := domain.AccountStatus(status)
	if st != domain.AccountActive && st != domain.AccountError {
		return nil, ErrValidation
	}
	a, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	a.Status = st
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Remove(ctx context.Context, userID int64, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) getOwned(ctx context.Context, userID int64, id string) (*domain.ConnectedAccount, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if a.UserID != userID {
		return nil, ErrAccountNotFound
	}
	return a, nil
}
