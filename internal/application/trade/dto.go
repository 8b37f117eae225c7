package trade

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CreateOrderInput carries a new order. The buyer comes from the caller's identity.
type CreateOrderInput struct {
	ProductID       uuid.UUID
	BuyerName       string
	Phone           string
	MeetingLocation string
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID       `json:"_id"`
	BuyerEmail      string          `json:"email"`
	BuyerName       string          `json:"buyerName"`
	ProductID       uuid.UUID       `json:"productId"`
	ProductName     string          `json:"productName"`
	Price           decimal.Decimal `json:"price"`
	Phone           string          `json:"phone"`
	MeetingLocation string          `json:"meetingLocation"`
	Paid            bool            `json:"paid"`
	TransactionID   *string         `json:"transactionId"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *trade.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		BuyerEmail:      o.BuyerEmail,
		BuyerName:       o.BuyerName,
		ProductID:       o.ProductID,
		ProductName:     o.ProductName,
		Price:           o.Price,
		Phone:           o.Phone,
		MeetingLocation: o.MeetingLocation,
		Paid:            o.Paid,
		TransactionID:   o.TransactionID,
		CreatedAt:       o.CreatedAt,
	}
}

// ToOrderResponses converts orders, never returning nil
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// CreateIntentInput carries a payment intent request. Price is the raw JSON
// value so both numbers and numeric strings are accepted.
type CreateIntentInput struct {
	Price   json.RawMessage
	OrderID *uuid.UUID
}

// IntentResponse is returned to the client to confirm the card charge
type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentInput carries a captured charge reported by the client
type RecordPaymentInput struct {
	OrderID       uuid.UUID
	TransactionID string
	Amount        decimal.Decimal
	Email         string
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID            uuid.UUID       `json:"_id"`
	OrderID       uuid.UUID       `json:"orderId"`
	Amount        decimal.Decimal `json:"price"`
	TransactionID string          `json:"transactionId"`
	Email         string          `json:"email"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain Payment to PaymentResponse
func ToPaymentResponse(p *trade.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		Email:         p.Email,
		CreatedAt:     p.CreatedAt,
	}
}
