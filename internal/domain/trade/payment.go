package trade

import (
	"strings"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Payment is the immutable record of a captured charge for an order
type Payment struct {
	shared.BaseEntity
	OrderID       uuid.UUID
	Amount        decimal.Decimal
	TransactionID string
	Email         string
}

// NewPayment creates a payment record
func NewPayment(orderID uuid.UUID, transactionID string, amount decimal.Decimal, email string) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order id is required")
	}
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction id cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}
	return &Payment{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       orderID,
		Amount:        amount.Round(2),
		TransactionID: transactionID,
		Email:         shared.CanonicalEmail(email),
	}, nil
}
