package models

import (
	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order entity
type OrderModel struct {
	BaseModel
	BuyerEmail      string          `gorm:"type:varchar(200);not null;index"`
	BuyerName       string          `gorm:"type:varchar(100)"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName     string          `gorm:"type:varchar(200)"`
	Price           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Phone           string          `gorm:"type:varchar(50)"`
	MeetingLocation string          `gorm:"type:varchar(200)"`
	Paid            bool            `gorm:"not null;default:false"`
	TransactionID   *string         `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the model to a domain Order
func (m *OrderModel) ToDomain() *trade.Order {
	return &trade.Order{
		BaseEntity:      m.BaseModel.ToDomain(),
		BuyerEmail:      m.BuyerEmail,
		BuyerName:       m.BuyerName,
		ProductID:       m.ProductID,
		ProductName:     m.ProductName,
		Price:           m.Price,
		Phone:           m.Phone,
		MeetingLocation: m.MeetingLocation,
		Paid:            m.Paid,
		TransactionID:   m.TransactionID,
	}
}

// OrderModelFromDomain creates a model from a domain Order
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{
		BuyerEmail:      o.BuyerEmail,
		BuyerName:       o.BuyerName,
		ProductID:       o.ProductID,
		ProductName:     o.ProductName,
		Price:           o.Price,
		Phone:           o.Phone,
		MeetingLocation: o.MeetingLocation,
		Paid:            o.Paid,
		TransactionID:   o.TransactionID,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}

// PaymentModel is the persistence model for the Payment entity
type PaymentModel struct {
	BaseModel
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TransactionID string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email         string          `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the model to a domain Payment
func (m *PaymentModel) ToDomain() *trade.Payment {
	return &trade.Payment{
		BaseEntity:    m.BaseModel.ToDomain(),
		OrderID:       m.OrderID,
		Amount:        m.Amount,
		TransactionID: m.TransactionID,
		Email:         m.Email,
	}
}

// PaymentModelFromDomain creates a model from a domain Payment
func PaymentModelFromDomain(p *trade.Payment) *PaymentModel {
	m := &PaymentModel{
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		Email:         p.Email,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
