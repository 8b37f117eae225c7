package persistence

import (
	"context"

	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindAll lists categories by name
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]catalog.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = *categoryModels[i].ToDomain()
	}
	return categories, nil
}

// Create creates a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	if err := r.db.WithContext(ctx).Create(models.CategoryModelFromDomain(category)).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
