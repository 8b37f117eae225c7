package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tradeapp "github.com/recyclezone/marketplace/internal/application/trade"
	"github.com/recyclezone/marketplace/internal/interfaces/http/middleware"
)

// OrderHandler handles order placement and lookup
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrderRequest is the body of POST /orders. Product name and price are
// taken from the stored product, not the body.
type CreateOrderRequest struct {
	ProductID       string `json:"productId" binding:"required,uuid"`
	BuyerName       string `json:"buyerName" binding:"max=100"`
	Phone           string `json:"phone" binding:"max=30"`
	MeetingLocation string `json:"meetingLocation" binding:"max=200"`
}

// Create godoc
// @Summary      Place an order
// @Description  Reserves one unit of the product for the caller
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body CreateOrderRequest true "Order"
// @Success      201 {object} dto.Response{data=shared.InsertResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.orderService.Create(c.Request.Context(), middleware.GetCallerEmail(c), tradeapp.CreateOrderInput{
		ProductID:       uuid.MustParse(req.ProductID),
		BuyerName:       req.BuyerName,
		Phone:           req.Phone,
		MeetingLocation: req.MeetingLocation,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// ListByBuyer godoc
// @Summary      List a buyer's orders
// @Tags         orders
// @Produce      json
// @Param        email path string true "Buyer email"
// @Success      200 {object} dto.Response{data=[]tradeapp.OrderResponse}
// @Router       /orders/{email} [get]
func (h *OrderHandler) ListByBuyer(c *gin.Context) {
	orders, err := h.orderService.ListByBuyer(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// GetForPayment godoc
// @Summary      Load an order for checkout
// @Description  Returns an array holding the order, or an empty array
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=[]tradeapp.OrderResponse}
// @Router       /orders/payment/{id} [get]
func (h *OrderHandler) GetForPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Success(c, []tradeapp.OrderResponse{})
		return
	}

	orders, err := h.orderService.GetForPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Delete godoc
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=shared.DeleteResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id", "order")
	if !ok {
		return
	}

	result, err := h.orderService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
