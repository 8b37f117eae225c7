package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/domain/trade"
	"github.com/recyclezone/marketplace/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func newListedProduct(t *testing.T, price string, quantity int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("seller@example.com", "Desk", "furniture", decimal.RequireFromString(price), quantity, catalog.ProductDetails{})
	require.NoError(t, err)
	return p
}

func newPlacedOrder(t *testing.T, price string) *trade.Order {
	t.Helper()
	o, err := trade.NewOrder("buyer@example.com", trade.ProductSnapshot{
		ID:    uuid.New(),
		Name:  "Desk",
		Price: decimal.RequireFromString(price),
	}, trade.OrderContact{BuyerName: "Bo"})
	require.NoError(t, err)
	return o
}

func newOrderService() (*OrderService, *MockOrderRepository, *MockProductRepository) {
	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	return NewOrderService(orders, products, nil), orders, products
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the product and reserves stock", func(t *testing.T) {
		svc, orders, products := newOrderService()
		bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{Meter: noop.NewMeterProvider().Meter("test")})
		require.NoError(t, err)
		svc.SetBusinessMetrics(bm)

		product := newListedProduct(t, "20.00", 3)
		products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		orders.On("CreateReservingStock", mock.Anything, mock.MatchedBy(func(o *trade.Order) bool {
			return o.BuyerEmail == "buyer@example.com" &&
				o.ProductID == product.ID &&
				o.ProductName == "Desk" &&
				o.Price.Equal(decimal.NewFromInt(20)) &&
				o.MeetingLocation == "Library" &&
				!o.Paid
		})).Return(nil)

		result, err := svc.Create(ctx, "Buyer@Example.com", CreateOrderInput{
			ProductID:       product.ID,
			BuyerName:       "Bo",
			Phone:           "0100",
			MeetingLocation: "Library",
		})
		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.NotEqual(t, uuid.Nil, result.InsertedID)
		orders.AssertExpectations(t)
	})

	t.Run("missing product", func(t *testing.T) {
		svc, orders, products := newOrderService()
		id := uuid.New()
		products.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, "buyer@example.com", CreateOrderInput{ProductID: id})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		orders.AssertNotCalled(t, "CreateReservingStock", mock.Anything, mock.Anything)
	})

	t.Run("sold out", func(t *testing.T) {
		svc, orders, products := newOrderService()
		product := newListedProduct(t, "5", 0)
		products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		orders.On("CreateReservingStock", mock.Anything, mock.Anything).Return(shared.ErrInsufficientStock)

		_, err := svc.Create(ctx, "buyer@example.com", CreateOrderInput{ProductID: product.ID})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	})

	t.Run("product removed between lookup and reservation", func(t *testing.T) {
		svc, orders, products := newOrderService()
		product := newListedProduct(t, "5", 1)
		products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		orders.On("CreateReservingStock", mock.Anything, mock.Anything).Return(shared.ErrNotFound)

		_, err := svc.Create(ctx, "buyer@example.com", CreateOrderInput{ProductID: product.ID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		svc, orders, products := newOrderService()
		product := newListedProduct(t, "5", 1)
		products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		orders.On("CreateReservingStock", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		_, err := svc.Create(ctx, "buyer@example.com", CreateOrderInput{ProductID: product.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create order")
		var domainErr *shared.DomainError
		assert.False(t, errors.As(err, &domainErr))
	})

	t.Run("anonymous buyer is rejected", func(t *testing.T) {
		svc, orders, products := newOrderService()
		product := newListedProduct(t, "5", 1)
		products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		_, err := svc.Create(ctx, "  ", CreateOrderInput{ProductID: product.ID})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		orders.AssertNotCalled(t, "CreateReservingStock", mock.Anything, mock.Anything)
	})
}

func TestOrderService_ListByBuyer(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := newOrderService()

	order := newPlacedOrder(t, "20")
	orders.On("FindByBuyer", ctx, "buyer@example.com").Return([]trade.Order{*order}, nil)
	orders.On("FindByBuyer", ctx, "nobody@example.com").Return([]trade.Order{}, nil)

	got, err := svc.ListByBuyer(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, order.ID, got[0].ID)
	assert.False(t, got[0].Paid)
	assert.Nil(t, got[0].TransactionID)

	mixed, err := svc.ListByBuyer(ctx, " Buyer@Example.COM ")
	require.NoError(t, err)
	assert.Len(t, mixed, 1)

	empty, err := svc.ListByBuyer(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestOrderService_GetForPayment(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := newOrderService()

	order := newPlacedOrder(t, "20")
	missing := uuid.New()
	orders.On("FindByID", ctx, order.ID).Return(order, nil)
	orders.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

	got, err := svc.GetForPayment(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Price.Equal(decimal.NewFromInt(20)))

	none, err := svc.GetForPayment(ctx, missing)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := newOrderService()

	id := uuid.New()
	ghost := uuid.New()
	orders.On("Delete", ctx, id).Return(int64(1), nil)
	orders.On("Delete", ctx, ghost).Return(int64(0), nil)

	result, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, shared.DeleteResult{Acknowledged: true, DeletedCount: 1}, result)

	_, err = svc.Delete(ctx, ghost)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
