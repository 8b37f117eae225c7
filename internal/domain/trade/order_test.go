package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	order, err := NewOrder("Buyer@Example.com", ProductSnapshot{
		ID:    uuid.New(),
		Name:  "Desk",
		Price: decimal.RequireFromString("20.00"),
	}, OrderContact{BuyerName: "Bo", Phone: "0100", MeetingLocation: "Campus gate"})
	require.NoError(t, err)
	return order
}

func TestNewOrder(t *testing.T) {
	order := newTestOrder(t)

	assert.Equal(t, "buyer@example.com", order.BuyerEmail)
	assert.Equal(t, "Desk", order.ProductName)
	assert.Equal(t, "20", order.Price.String())
	assert.False(t, order.Paid)
	assert.Nil(t, order.TransactionID)

	t.Run("requires buyer", func(t *testing.T) {
		_, err := NewOrder("", ProductSnapshot{ID: uuid.New(), Price: decimal.NewFromInt(1)}, OrderContact{})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("requires product", func(t *testing.T) {
		_, err := NewOrder("b@example.com", ProductSnapshot{Price: decimal.NewFromInt(1)}, OrderContact{})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("requires positive price", func(t *testing.T) {
		_, err := NewOrder("b@example.com", ProductSnapshot{ID: uuid.New()}, OrderContact{})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestNewPayment(t *testing.T) {
	orderID := uuid.New()
	p, err := NewPayment(orderID, " tx1 ", decimal.RequireFromString("20.004"), "B@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tx1", p.TransactionID)
	assert.Equal(t, "20", p.Amount.String())
	assert.Equal(t, "b@example.com", p.Email)

	_, err = NewPayment(uuid.Nil, "tx1", decimal.NewFromInt(1), "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewPayment(orderID, "", decimal.NewFromInt(1), "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewPayment(orderID, "tx1", decimal.NewFromInt(-1), "")
	assert.ErrorIs(t, err, shared.ErrInvalidAmount)
}
