package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/domain/trade"
	"github.com/recyclezone/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return model.ToDomain(), nil
}

// FindByBuyer lists the orders placed by email, newest first
func (r *GormOrderRepository) FindByBuyer(ctx context.Context, email string) ([]trade.Order, error) {
	var orderModels []models.OrderModel
	err := r.db.WithContext(ctx).
		Where("buyer_email = ?", email).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]trade.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = *orderModels[i].ToDomain()
	}
	return orders, nil
}

// CreateReservingStock decrements the product quantity and inserts the order atomically.
// The conditional UPDATE is the reservation: concurrent buyers of the last unit
// race on it and exactly one sees a changed row.
func (r *GormOrderRepository) CreateReservingStock(ctx context.Context, order *trade.Order) error {
	model := models.OrderModelFromDomain(order)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ProductModel{}).
			Where("id = ? AND quantity > 0", order.ProductID).
			Updates(map[string]any{
				"quantity":   gorm.Expr("quantity - 1"),
				"updated_at": model.CreatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.ProductModel{}).Where("id = ?", order.ProductID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return shared.ErrNotFound
			}
			return shared.ErrInsufficientStock
		}

		return tx.Create(model).Error
	})
}

// Delete deletes an order by ID
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
