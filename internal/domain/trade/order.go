package trade

import (
	"strings"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductSnapshot is the part of a product copied into an order at creation.
// Later changes to the product do not reach existing orders.
type ProductSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

// OrderContact is how the buyer and seller arrange the hand-over
type OrderContact struct {
	BuyerName       string
	Phone           string
	MeetingLocation string
}

// Order is a buyer's claim on one unit of a product.
// Its only transition is unpaid to paid, and it happens at most once.
type Order struct {
	shared.BaseEntity
	BuyerEmail      string
	BuyerName       string
	ProductID       uuid.UUID
	ProductName     string
	Price           decimal.Decimal
	Phone           string
	MeetingLocation string
	Paid            bool
	TransactionID   *string
}

// NewOrder creates an unpaid order for buyerEmail
func NewOrder(buyerEmail string, product ProductSnapshot, contact OrderContact) (*Order, error) {
	buyerEmail = shared.CanonicalEmail(buyerEmail)
	if buyerEmail == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Buyer email cannot be empty")
	}
	if product.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product is required")
	}
	if !product.Price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price must be positive")
	}

	return &Order{
		BaseEntity:      shared.NewBaseEntity(),
		BuyerEmail:      buyerEmail,
		BuyerName:       strings.TrimSpace(contact.BuyerName),
		ProductID:       product.ID,
		ProductName:     product.Name,
		Price:           product.Price,
		Phone:           strings.TrimSpace(contact.Phone),
		MeetingLocation: strings.TrimSpace(contact.MeetingLocation),
	}, nil
}
