package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/identity"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, role identity.Role) ([]identity.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenBlacklist is a mock implementation of auth.TokenBlacklist
type MockTokenBlacklist struct {
	mock.Mock
}

func (m *MockTokenBlacklist) InvalidateUserTokens(ctx context.Context, email string, ttl time.Duration) error {
	args := m.Called(ctx, email, ttl)
	return args.Error(0)
}

func (m *MockTokenBlacklist) IsUserTokenInvalidated(ctx context.Context, email string, issuedAt time.Time) (bool, error) {
	args := m.Called(ctx, email, issuedAt)
	return args.Bool(0), args.Error(1)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(email string) (string, time.Time, error) {
	args := m.Called(email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
