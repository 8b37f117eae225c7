package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tradeapp "github.com/recyclezone/marketplace/internal/application/trade"
	"github.com/shopspring/decimal"
)

// PaymentHandler bridges checkout and the payment ledger
type PaymentHandler struct {
	BaseHandler
	paymentService *tradeapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *tradeapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntentRequest is the body of POST /create-payment-intent. Price may
// be a JSON number or a numeric string.
type CreateIntentRequest struct {
	Price   json.RawMessage `json:"price"`
	OrderID string          `json:"orderId" binding:"omitempty,uuid"`
}

// RecordPaymentRequest is the body of POST /payments
type RecordPaymentRequest struct {
	OrderID       string          `json:"orderId" binding:"required,uuid"`
	TransactionID string          `json:"transactionId" binding:"required,max=100"`
	Price         decimal.Decimal `json:"price"`
	Email         string          `json:"email" binding:"omitempty,email"`
}

// CreateIntent godoc
// @Summary      Create a card payment intent
// @Description  Converts the price to cents and asks the processor for a client secret
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body CreateIntentRequest true "Price and optional order"
// @Success      200 {object} dto.Response{data=tradeapp.IntentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	input := tradeapp.CreateIntentInput{Price: req.Price}
	if req.OrderID != "" {
		orderID := uuid.MustParse(req.OrderID)
		input.OrderID = &orderID
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, intent)
}

// Record godoc
// @Summary      Record a captured payment
// @Description  Stores the payment and marks the order paid. A paid order rejects further payments.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body RecordPaymentRequest true "Captured charge"
// @Success      201 {object} dto.Response{data=shared.InsertResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.paymentService.Record(c.Request.Context(), tradeapp.RecordPaymentInput{
		OrderID:       uuid.MustParse(req.OrderID),
		TransactionID: req.TransactionID,
		Amount:        req.Price,
		Email:         req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// ListForOrder godoc
// @Summary      List payments for an order
// @Tags         payments
// @Produce      json
// @Param        orderId path string true "Order ID"
// @Success      200 {object} dto.Response{data=[]tradeapp.PaymentResponse}
// @Security     BearerAuth
// @Router       /payments/{orderId} [get]
func (h *PaymentHandler) ListForOrder(c *gin.Context) {
	orderID, ok := h.ParamUUID(c, "orderId", "order")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListForOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}
