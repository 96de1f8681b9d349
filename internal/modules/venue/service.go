package venue

import (
	"context"
	"errors"

	"courtwatch/internal/domain"

	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]domain.Venue, error)
}

type Service struct {
	repo VenueRepository
}

func NewService(repo VenueRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Venue, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}
