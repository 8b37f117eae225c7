package trade

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID returns shared.ErrNotFound when no order has id
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByBuyer lists the orders placed by email, newest first
	FindByBuyer(ctx context.Context, email string) ([]Order, error)

	// CreateReservingStock takes one unit of the ordered product and inserts
	// the order in a single transaction. No remaining stock yields
	// shared.ErrInsufficientStock; a missing product yields shared.ErrNotFound.
	CreateReservingStock(ctx context.Context, order *Order) error

	// Delete removes the order and returns the number of rows removed
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// RecordCapture inserts payment and marks its order paid with the
	// payment's transaction id in one transaction. A missing order yields
	// shared.ErrNotFound and a paid order yields shared.ErrAlreadyPaid;
	// in both cases nothing is written.
	RecordCapture(ctx context.Context, payment *Payment) error

	// FindByOrder lists payments recorded for an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
}
