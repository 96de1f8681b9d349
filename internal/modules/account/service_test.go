package account

import (
	"context"
	"testing"
	"time"

	"courtwatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, a *domain.ConnectedAccount) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.ConnectedAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConnectedAccount), args.Error(1)
}

func (m *MockAccountRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ConnectedAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConnectedAccount), args.Error(1)
}

func (m *MockAccountRepository) ListActive(ctx context.Context) ([]domain.ConnectedAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConnectedAccount), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *domain.ConnectedAccount) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) TouchLastUsed(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPickAccount_LeastRecentlyUsedFirst(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)
	now := time.Date(2024, 11, 24, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// ListActive already orders by last_used; the service takes the head.
	repo.On("ListActive", mock.Anything).Return([]domain.ConnectedAccount{
		{ID: "acct-old", Status: domain.AccountActive},
		{ID: "acct-new", Status: domain.AccountActive},
	}, nil)
	repo.On("TouchLastUsed", mock.Anything, "acct-old", now).Return(nil)

	id, err := svc.PickAccount(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "acct-old", id)
	repo.AssertExpectations(t)
}

func TestPickAccount_EmptyPool(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("ListActive", mock.Anything).Return([]domain.ConnectedAccount{}, nil)

	_, err := svc.PickAccount(context.Background())
	assert.ErrorIs(t, err, ErrNoUsableAccount)
	repo.AssertNotCalled(t, "TouchLastUsed", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdd_DefaultsToActive(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	a, err := svc.Add(context.Background(), 1, AddAccountRequest{
		Name:     "Main",
		Username: "player@example.com",
		Password: "secret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, domain.AccountActive, a.Status)
	assert.Equal(t, int64(1), a.UserID)
}

func TestAdd_Validation(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), 1, AddAccountRequest{Name: "Main"})
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	_, err := svc.SetStatus(context.Background(), 1, "acct-1", "suspended")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetStatus_OtherUsersAccountIsNotFound(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "acct-1").Return(&domain.ConnectedAccount{ID: "acct-1", UserID: 2}, nil)

	_, err := svc.SetStatus(context.Background(), 1, "acct-1", "error")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRemove_NotFound(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	err := svc.Remove(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
