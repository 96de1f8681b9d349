package auth

import (
	"context"
	"testing"

	"courtwatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockJWT struct{}

func (mockJWT) GenerateToken(userID int64, email string) (string, error) {
	return "test-token", nil
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, mockJWT{})

	users.On("GetByEmail", mock.Anything, "player@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Player",
		Email:    "Player@Example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "player@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, mockJWT{})

	users.On("GetByEmail", mock.Anything, "player@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Player",
		Email:    "player@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, mockJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "player@example.com").Return(&domain.User{
		ID:           1,
		Email:        "player@example.com",
		PasswordHash: string(hash),
	}, nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "player@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "test-token", result.AccessToken)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, mockJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "player@example.com").Return(&domain.User{
		ID:           1,
		Email:        "player@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "player@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, mockJWT{})

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
