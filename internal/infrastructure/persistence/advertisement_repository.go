package persistence

import (
	"context"

	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/recyclezone/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAdvertisementRepository implements AdvertisementRepository using GORM
type GormAdvertisementRepository struct {
	db *gorm.DB
}

// NewGormAdvertisementRepository creates a new GormAdvertisementRepository
func NewGormAdvertisementRepository(db *gorm.DB) *GormAdvertisementRepository {
	return &GormAdvertisementRepository{db: db}
}

func (r *GormAdvertisementRepository) FindAll(ctx context.Context) ([]catalog.Advertisement, error) {
	var adModels []models.AdvertisementModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&adModels).Error; err != nil {
		return nil, err
	}

	ads := make([]catalog.Advertisement, len(adModels))
	for i := range adModels {
		ads[i] = *adModels[i].ToDomain()
	}
	return ads, nil
}

func (r *GormAdvertisementRepository) Create(ctx context.Context, ad *catalog.Advertisement) error {
	return r.db.WithContext(ctx).Create(models.AdvertisementModelFromDomain(ad)).Error
}

var _ catalog.AdvertisementRepository = (*GormAdvertisementRepository)(nil)
