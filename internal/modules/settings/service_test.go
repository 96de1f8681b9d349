package settings

import (
	"context"
	"testing"

	"courtwatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (domain.AutoCancelSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AutoCancelSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s domain.AutoCancelSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestUpdate_RejectsInvertedTempRange(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewService(repo)

	in := domain.DefaultAutoCancelSettings()
	in.MinTempEnabled = true
	in.MaxTempEnabled = true
	in.MinTemp = 25
	in.MaxTemp = 10

	_, err := svc.Update(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdate_RejectsRainProbabilityOutOfRange(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewService(repo)

	in := domain.DefaultAutoCancelSettings()
	in.RainProbability = 140

	_, err := svc.Update(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_PersistsValidSettings(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewService(repo)

	in := domain.DefaultAutoCancelSettings()
	in.WeatherEnabled = true
	in.MinTempEnabled = true

	repo.On("Save", mock.Anything, in).Return(nil)

	out, err := svc.Update(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
	repo.AssertExpectations(t)
}

func TestReset_WritesDefaults(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewService(repo)

	def := domain.DefaultAutoCancelSettings()
	repo.On("Save", mock.Anything, def).Return(nil)

	out, err := svc.Reset(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, def, out)
}

func TestUpdate_RejectsZeroAvailabilityThreshold(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewService(repo)

	in := domain.DefaultAutoCancelSettings()
	in.AvailabilityEnabled = true
	in.MinAvailableCourts = 0

	_, err := svc.Update(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
