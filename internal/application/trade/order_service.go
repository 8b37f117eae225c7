package trade

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/domain/trade"
	"github.com/recyclezone/marketplace/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// OrderService handles the order lifecycle up to payment
type OrderService struct {
	orderRepo   trade.OrderRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger

	businessMetrics *telemetry.BusinessMetrics
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *OrderService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Create places an order for one unit of a product on behalf of buyerEmail.
// The product's name and price are copied into the order, and one unit of
// stock is reserved in the same transaction as the insert.
func (s *OrderService) Create(ctx context.Context, buyerEmail string, input CreateOrderInput) (shared.InsertResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "create")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrProductID, input.ProductID.String(),
		telemetry.SpanAttrBuyerEmail, buyerEmail,
	)

	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.recordRejected(ctx, telemetry.OrderOutcomeNotFound)
			return shared.InsertResult{}, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		telemetry.RecordError(span, err)
		return shared.InsertResult{}, fmt.Errorf("failed to load product: %w", err)
	}

	order, err := trade.NewOrder(buyerEmail, trade.ProductSnapshot{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}, trade.OrderContact{
		BuyerName:       input.BuyerName,
		Phone:           input.Phone,
		MeetingLocation: input.MeetingLocation,
	})
	if err != nil {
		return shared.InsertResult{}, err
	}

	if err := s.orderRepo.CreateReservingStock(ctx, order); err != nil {
		switch {
		case errors.Is(err, shared.ErrInsufficientStock):
			s.recordRejected(ctx, telemetry.OrderOutcomeSoldOut)
			return shared.InsertResult{}, shared.NewDomainError("INSUFFICIENT_STOCK", "Product is sold out")
		case errors.Is(err, shared.ErrNotFound):
			s.recordRejected(ctx, telemetry.OrderOutcomeNotFound)
			return shared.InsertResult{}, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		telemetry.RecordError(span, err)
		return shared.InsertResult{}, fmt.Errorf("failed to create order: %w", err)
	}
	telemetry.AddEvent(span, "stock_reserved", telemetry.SpanAttrProductID, product.ID.String())

	if s.businessMetrics != nil {
		s.businessMetrics.RecordOrderCreated(ctx, order.Price)
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrOrderID, order.ID.String())
	telemetry.SetOK(span)

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("product_id", product.ID.String()),
		zap.String("buyer_email", order.BuyerEmail))
	return shared.NewInsertResult(order.ID), nil
}

func (s *OrderService) recordRejected(ctx context.Context, outcome telemetry.OrderOutcome) {
	if s.businessMetrics != nil {
		s.businessMetrics.RecordOrderRejected(ctx, outcome)
	}
}

// ListByBuyer returns the orders placed by email, newest first
func (s *OrderService) ListByBuyer(ctx context.Context, email string) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByBuyer(ctx, shared.CanonicalEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return ToOrderResponses(orders), nil
}

// GetForPayment returns the order with id as a zero- or one-element slice
func (s *OrderService) GetForPayment(ctx context.Context, id uuid.UUID) ([]OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return []OrderResponse{}, nil
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return []OrderResponse{ToOrderResponse(order)}, nil
}

// Delete removes an order
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) (shared.DeleteResult, error) {
	deleted, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return shared.DeleteResult{}, fmt.Errorf("failed to delete order: %w", err)
	}
	if deleted == 0 {
		return shared.DeleteResult{}, shared.NewDomainError("NOT_FOUND", "Order not found")
	}

	s.logger.Info("Order deleted", zap.String("order_id", id.String()))
	return shared.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
