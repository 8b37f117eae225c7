package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/moderation"
	"github.com/recyclezone/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReportRepository implements ReportRepository using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// FindAll lists reports matching filter, newest first
func (r *GormReportRepository) FindAll(ctx context.Context, filter moderation.ReportFilter) ([]moderation.Report, error) {
	query := r.db.WithContext(ctx).Model(&models.ReportModel{})
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.ReporterEmail != "" {
		query = query.Where("reporter_email = ?", filter.ReporterEmail)
	}

	var reportModels []models.ReportModel
	if err := query.Order("created_at DESC").Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]moderation.Report, len(reportModels))
	for i := range reportModels {
		reports[i] = *reportModels[i].ToDomain()
	}
	return reports, nil
}

// Create creates a new report
func (r *GormReportRepository) Create(ctx context.Context, report *moderation.Report) error {
	return r.db.WithContext(ctx).Create(models.ReportModelFromDomain(report)).Error
}

// Delete deletes a report by ID
func (r *GormReportRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ReportModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

var _ moderation.ReportRepository = (*GormReportRepository)(nil)
