package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductFilter holds equality filters; empty fields match everything
type ProductFilter struct {
	Category    string
	SellerEmail string
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID returns shared.ErrNotFound when no product has id
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll lists products matching filter, newest first
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)

	// Create inserts product
	Create(ctx context.Context, product *Product) error

	// Delete removes the product and returns the number of rows removed
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// ClearStock sets quantity to zero and returns the number of rows changed
	ClearStock(ctx context.Context, id uuid.UUID) (int64, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, category *Category) error
}

// AdvertisementRepository defines the interface for advertisement persistence
type AdvertisementRepository interface {
	// FindAll lists advertisements newest first
	FindAll(ctx context.Context) ([]Advertisement, error)
	Create(ctx context.Context, ad *Advertisement) error
}
