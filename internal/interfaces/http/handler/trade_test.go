package handler

import (
	"net/http"
	"sync"
	"testing"

	tradeapp "github.com/recyclezone/marketplace/internal/application/trade"
	"github.com/recyclezone/marketplace/internal/domain/identity"
	"github.com/recyclezone/marketplace/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(app *testApp, buyer, productID string) int {
	w := app.do(http.MethodPost, "/orders", buyer, CreateOrderRequest{
		ProductID:       productID,
		BuyerName:       "Ann",
		Phone:           "555-0100",
		MeetingLocation: "Library entrance",
	})
	return w.Code
}

func TestOrderHandler_Create(t *testing.T) {
	app := newTestApp(t)
	productID := listProduct(t, app, "seller@example.com", "Desk lamp", "lighting", 1)

	w := app.do(http.MethodPost, "/orders", "ann@example.com", CreateOrderRequest{ProductID: productID, BuyerName: "Ann"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID := insertedID(t, w)

	var orders []tradeapp.OrderResponse
	decodeData(t, app.do(http.MethodGet, "/orders/ann@example.com", "", nil), &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].ID.String())
	assert.Equal(t, "Desk lamp", orders[0].ProductName)
	assert.True(t, decimal.NewFromInt(10).Equal(orders[0].Price))
	assert.False(t, orders[0].Paid)
	assert.Nil(t, orders[0].TransactionID)

	t.Run("sold out", func(t *testing.T) {
		w := app.do(http.MethodPost, "/orders", "bob@example.com", CreateOrderRequest{ProductID: productID})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeInsufficientStock, decode(t, w).Error.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		w := app.do(http.MethodPost, "/orders", "bob@example.com", CreateOrderRequest{ProductID: "6f1c7b7e-8e0e-4d0b-9a51-0c7c5f0f6b11"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed product id", func(t *testing.T) {
		w := app.do(http.MethodPost, "/orders", "bob@example.com", CreateOrderRequest{ProductID: "lamp"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decode(t, w).Error.Code)
	})
}

func TestOrderHandler_ConcurrentOrdersDoNotOversell(t *testing.T) {
	app := newTestApp(t)
	productID := listProduct(t, app, "seller@example.com", "Last bike", "sports", 1)

	const buyers = 5
	codes := make([]int, buyers)
	var wg sync.WaitGroup
	for i := range buyers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = placeOrder(app, "buyer@example.com", productID)
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusUnprocessableEntity, code)
		}
	}
	assert.Equal(t, 1, created)
}

func TestOrderHandler_GetForPaymentAndDelete(t *testing.T) {
	app := newTestApp(t)
	productID := listProduct(t, app, "seller@example.com", "Lamp", "lighting", 3)
	require.Equal(t, http.StatusCreated, placeOrder(app, "ann@example.com", productID))

	var orders []tradeapp.OrderResponse
	decodeData(t, app.do(http.MethodGet, "/orders/ann@example.com", "", nil), &orders)
	require.Len(t, orders, 1)
	orderID := orders[0].ID.String()

	var found []tradeapp.OrderResponse
	decodeData(t, app.do(http.MethodGet, "/orders/payment/"+orderID, "", nil), &found)
	assert.Len(t, found, 1)

	w := app.do(http.MethodGet, "/orders/payment/not-a-uuid", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", string(decode(t, w).Data))

	w = app.do(http.MethodDelete, "/orders/"+orderID, "root@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/orders/payment/"+orderID, "", nil)
	assert.Equal(t, "[]", string(decode(t, w).Data))

	w = app.do(http.MethodDelete, "/orders/"+orderID, "root@example.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	app := newTestApp(t)

	t.Run("string price", func(t *testing.T) {
		w := app.do(http.MethodPost, "/create-payment-intent", "ann@example.com", `{"price":"10.00"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var intent tradeapp.IntentResponse
		decodeData(t, w, &intent)
		assert.Equal(t, "pi_test_secret", intent.ClientSecret)

		require.Len(t, app.gateway.requests, 1)
		assert.Equal(t, int64(1000), app.gateway.requests[0].AmountMinor)
		assert.Equal(t, "usd", app.gateway.requests[0].Currency)
	})

	t.Run("number price", func(t *testing.T) {
		w := app.do(http.MethodPost, "/create-payment-intent", "ann@example.com", `{"price":19.999}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(2000), app.gateway.requests[len(app.gateway.requests)-1].AmountMinor)
	})

	for _, body := range []string{`{"price":0}`, `{"price":"abc"}`, `{"price":-5}`, `{}`} {
		t.Run("rejects "+body, func(t *testing.T) {
			w := app.do(http.MethodPost, "/create-payment-intent", "ann@example.com", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, dto.ErrCodeInvalidAmount, decode(t, w).Error.Code)
		})
	}

	t.Run("processor disabled", func(t *testing.T) {
		app.gateway.disabled = true
		defer func() { app.gateway.disabled = false }()

		w := app.do(http.MethodPost, "/create-payment-intent", "ann@example.com", `{"price":"10.00"}`)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, dto.ErrCodePaymentsUnavailable, decode(t, w).Error.Code)
	})
}

func TestPaymentHandler_BuyerScenario(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "ann@example.com", identity.RoleBuyer)
	productID := listProduct(t, app, "seller@example.com", "Desk lamp", "lighting", 1)

	w := app.do(http.MethodPost, "/orders", "ann@example.com", CreateOrderRequest{ProductID: productID})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := insertedID(t, w)

	w = app.do(http.MethodPost, "/create-payment-intent", "ann@example.com", map[string]any{"price": "10.00", "orderId": orderID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, orderID, app.gateway.requests[0].Metadata["order_id"])

	w = app.do(http.MethodPost, "/create-payment-intent", "ann@example.com", map[string]any{"price": "9.00", "orderId": orderID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidAmount, decode(t, w).Error.Code)

	w = app.do(http.MethodPost, "/payments", "", map[string]any{
		"orderId":       orderID,
		"transactionId": "tx1",
		"price":         10,
		"email":         "ann@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var paid []tradeapp.OrderResponse
	decodeData(t, app.do(http.MethodGet, "/orders/payment/"+orderID, "", nil), &paid)
	require.Len(t, paid, 1)
	assert.True(t, paid[0].Paid)
	require.NotNil(t, paid[0].TransactionID)
	assert.Equal(t, "tx1", *paid[0].TransactionID)

	t.Run("second payment is rejected", func(t *testing.T) {
		w := app.do(http.MethodPost, "/payments", "", map[string]any{
			"orderId":       orderID,
			"transactionId": "tx2",
			"price":         10,
			"email":         "ann@example.com",
		})
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeAlreadyPaid, decode(t, w).Error.Code)

		var again []tradeapp.OrderResponse
		decodeData(t, app.do(http.MethodGet, "/orders/payment/"+orderID, "", nil), &again)
		assert.Equal(t, "tx1", *again[0].TransactionID)
	})

	t.Run("intent for a paid order", func(t *testing.T) {
		w := app.do(http.MethodPost, "/create-payment-intent", "ann@example.com", map[string]any{"price": "10.00", "orderId": orderID})
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeAlreadyPaid, decode(t, w).Error.Code)
	})

	t.Run("ledger lists the single capture", func(t *testing.T) {
		var payments []tradeapp.PaymentResponse
		decodeData(t, app.do(http.MethodGet, "/payments/"+orderID, "root@example.com", nil), &payments)
		require.Len(t, payments, 1)
		assert.Equal(t, "tx1", payments[0].TransactionID)
		assert.True(t, decimal.NewFromInt(10).Equal(payments[0].Amount))
	})

	t.Run("unknown order", func(t *testing.T) {
		w := app.do(http.MethodPost, "/payments", "", map[string]any{
			"orderId":       "6f1c7b7e-8e0e-4d0b-9a51-0c7c5f0f6b11",
			"transactionId": "tx3",
			"price":         10,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
