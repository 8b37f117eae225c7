package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/domain/trade"
	"github.com/recyclezone/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// RecordCapture flips the order to paid and stores the payment in one transaction.
// Only an unpaid order matches the UPDATE, so a second capture writes nothing.
func (r *GormPaymentRepository) RecordCapture(ctx context.Context, payment *trade.Payment) error {
	model := models.PaymentModelFromDomain(payment)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.OrderModel{}).
			Where("id = ? AND paid = ?", payment.OrderID, false).
			Updates(map[string]any{
				"paid":           true,
				"transaction_id": payment.TransactionID,
				"updated_at":     model.CreatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.OrderModel{}).Where("id = ?", payment.OrderID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return shared.ErrNotFound
			}
			return shared.ErrAlreadyPaid
		}

		if err := tx.Create(model).Error; err != nil {
			// the transaction id already settled another order
			if isUniqueViolation(err) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
}

// FindByOrder lists payments recorded for an order
func (r *GormPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.Payment, error) {
	var paymentModels []models.PaymentModel
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}

	payments := make([]trade.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = *paymentModels[i].ToDomain()
	}
	return payments, nil
}

var _ trade.PaymentRepository = (*GormPaymentRepository)(nil)
