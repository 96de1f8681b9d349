package settings

import (
	"context"

	"courtwatch/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (domain.AutoCancelSettings, error)
	Save(ctx context.Context, s domain.AutoCancelSettings) error
}

// Service exposes the automation policy. It satisfies the monitor's
// PolicySource so the engine reads the same snapshot users edit.
type Service struct {
	repo SettingsRepository
}

func NewService(repo SettingsRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (domain.AutoCancelSettings, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Update(ctx context.Context, in domain.AutoCancelSettings) (domain.AutoCancelSettings, error) {
	if err := validate(in); err != nil {
		return domain.AutoCancelSettings{}, err
	}
	if err := s.repo.Save(ctx, in); err != nil {
		return domain.AutoCancelSettings{}, err
	}
	return in, nil
}

func (s *Service) Reset(ctx context.Context) (domain.AutoCancelSettings, error) {
	def := domain.DefaultAutoCancelSettings()
	if err := s.repo.Save(ctx, def); err != nil {
		return domain.AutoCancelSettings{}, err
	}
	return def, nil
}

func validate(in domain.AutoCancelSettings) error {
	if in.MinTempEnabled && in.MaxTempEnabled && in.MinTemp > in.MaxTemp {
		return ErrValidation
	}
	if in.RainProbability < 0 || in.RainProbability > 100 {
		return ErrValidation
	}
	if in.RecentRainHours < 0 || in.MaxWind < 0 {
		return ErrValidation
	}
	// A zero threshold would fire the availability cancel on slots with
	// no ingested data at all; at least one free court must be observed.
	if in.MinAvailableCourts < 1 || in.MaxAvailableCourtsForRebook < 0 {
		return ErrValidation
	}
	return nil
}
