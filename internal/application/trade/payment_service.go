package trade

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/domain/trade"
	"github.com/recyclezone/marketplace/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// PaymentService bridges the card processor and the order store
type PaymentService struct {
	orderRepo   trade.OrderRepository
	paymentRepo trade.PaymentRepository
	gateway     trade.IntentGateway
	currency    string
	logger      *zap.Logger

	businessMetrics *telemetry.BusinessMetrics
}

// NewPaymentService creates a new PaymentService. An empty currency means usd.
func NewPaymentService(
	orderRepo trade.OrderRepository,
	paymentRepo trade.PaymentRepository,
	gateway trade.IntentGateway,
	currency string,
	logger *zap.Logger,
) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		currency:    currency,
		logger:      logger,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *PaymentService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// CreateIntent asks the processor for a card payment intent covering the
// given price. When an order is named, its stored price must match and the
// order must still be unpaid.
func (s *PaymentService) CreateIntent(ctx context.Context, input CreateIntentInput) (*IntentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "create_intent")
	defer span.End()

	price, err := trade.ParseAmount(input.Price)
	if err != nil {
		s.recordIntent(ctx, telemetry.PaymentStatusRejected)
		return nil, err
	}
	amountMinor, err := trade.ToMinorUnits(price)
	if err != nil {
		s.recordIntent(ctx, telemetry.PaymentStatusRejected)
		return nil, err
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrAmountMinor, amountMinor,
		telemetry.SpanAttrCurrency, s.currency,
	)

	metadata := map[string]string{}
	if input.OrderID != nil {
		order, err := s.orderRepo.FindByID(ctx, *input.OrderID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
			}
			telemetry.RecordError(span, err)
			return nil, fmt.Errorf("failed to load order: %w", err)
		}
		if order.Paid {
			s.recordIntent(ctx, telemetry.PaymentStatusAlreadyPaid)
			return nil, shared.ErrAlreadyPaid
		}
		orderMinor, err := trade.ToMinorUnits(order.Price)
		if err != nil || orderMinor != amountMinor {
			s.recordIntent(ctx, telemetry.PaymentStatusRejected)
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Price does not match the order")
		}
		metadata["order_id"] = order.ID.String()
		metadata["product_id"] = order.ProductID.String()
		telemetry.SetAttributes(span, telemetry.SpanAttrOrderID, order.ID.String())
	}

	intent, err := s.gateway.CreateIntent(ctx, trade.IntentRequest{
		AmountMinor: amountMinor,
		Currency:    s.currency,
		Metadata:    metadata,
	})
	if err != nil {
		s.recordIntent(ctx, telemetry.PaymentStatusFailed)
		if errors.Is(err, shared.ErrPaymentsDisabled) {
			return nil, err
		}
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.recordIntent(ctx, telemetry.PaymentStatusSuccess)
	telemetry.SetOK(span)
	s.logger.Info("Payment intent created",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount_minor", amountMinor))
	return &IntentResponse{ClientSecret: intent.ClientSecret}, nil
}

func (s *PaymentService) recordIntent(ctx context.Context, status telemetry.PaymentStatus) {
	if s.businessMetrics != nil {
		s.businessMetrics.RecordPaymentIntent(ctx, s.currency, status)
	}
}

// Record stores a captured payment and marks its order paid in one
// transaction. An order that is already paid keeps its first transaction id
// and the new payment is rejected.
func (s *PaymentService) Record(ctx context.Context, input RecordPaymentInput) (shared.InsertResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "record")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrderID, input.OrderID.String(),
		telemetry.SpanAttrTransactionID, input.TransactionID,
	)

	payment, err := trade.NewPayment(input.OrderID, input.TransactionID, input.Amount, input.Email)
	if err != nil {
		return shared.InsertResult{}, err
	}

	if err := s.paymentRepo.RecordCapture(ctx, payment); err != nil {
		switch {
		case errors.Is(err, shared.ErrAlreadyPaid):
			s.recordCapture(ctx, payment, telemetry.PaymentStatusAlreadyPaid)
			s.logger.Warn("Payment rejected for paid order",
				zap.String("order_id", input.OrderID.String()),
				zap.String("transaction_id", payment.TransactionID))
			return shared.InsertResult{}, shared.ErrAlreadyPaid
		case errors.Is(err, shared.ErrNotFound):
			s.recordCapture(ctx, payment, telemetry.PaymentStatusRejected)
			return shared.InsertResult{}, shared.NewDomainError("NOT_FOUND", "Order not found")
		case errors.Is(err, shared.ErrAlreadyExists):
			s.recordCapture(ctx, payment, telemetry.PaymentStatusRejected)
			return shared.InsertResult{}, shared.NewDomainError("ALREADY_EXISTS", "Transaction already recorded for another order")
		}
		s.recordCapture(ctx, payment, telemetry.PaymentStatusFailed)
		telemetry.RecordError(span, err)
		return shared.InsertResult{}, fmt.Errorf("failed to record payment: %w", err)
	}

	s.recordCapture(ctx, payment, telemetry.PaymentStatusSuccess)
	telemetry.SetOK(span)
	s.logger.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("order_id", payment.OrderID.String()),
		zap.String("transaction_id", payment.TransactionID))
	return shared.NewInsertResult(payment.ID), nil
}

func (s *PaymentService) recordCapture(ctx context.Context, payment *trade.Payment, status telemetry.PaymentStatus) {
	if s.businessMetrics != nil {
		s.businessMetrics.RecordPaymentCaptured(ctx, payment.Amount, status)
	}
}

// ListForOrder returns the payments recorded against an order, oldest first
func (s *PaymentService) ListForOrder(ctx context.Context, orderID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses, nil
}
