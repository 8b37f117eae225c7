package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ClearStock(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockAdvertisementRepository is a mock implementation of catalog.AdvertisementRepository
type MockAdvertisementRepository struct {
	mock.Mock
}

func (m *MockAdvertisementRepository) FindAll(ctx context.Context) ([]catalog.Advertisement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Advertisement), args.Error(1)
}

func (m *MockAdvertisementRepository) Create(ctx context.Context, ad *catalog.Advertisement) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

// MockAdminResolver is a mock implementation of AdminResolver
type MockAdminResolver struct {
	mock.Mock
}

func (m *MockAdminResolver) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
