package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/recyclezone/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return model.ToDomain(), nil
}

// FindAll lists products matching filter, newest first
func (r *GormProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SellerEmail != "" {
		query = query.Where("seller_email = ?", filter.SellerEmail)
	}

	var productModels []models.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	return products, nil
}

// Create creates a new product
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Create(models.ProductModelFromDomain(product)).Error
}

// Delete deletes a product by ID
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ClearStock sets the quantity of a product to zero
func (r *GormProductRepository) ClearStock(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ? AND quantity <> 0", id).
		Updates(map[string]any{
			"quantity":   0,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
