package telemetry

import (
	"context"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics tracks marketplace activity: listings, orders, payment
// intents and captured payments.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	productListedTotal   *Counter
	orderCreatedTotal    *Counter
	orderRejectedTotal   *Counter
	orderAmount          *Histogram
	paymentIntentTotal   *Counter
	paymentCapturedTotal *Counter
	paymentAmountCents   *Counter
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter  metric.Meter
	Logger *zap.Logger
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:  cfg.Meter,
		logger: logger,
	}

	var err error

	bm.productListedTotal, err = NewCounter(cfg.Meter,
		"rz_product_listed_total",
		"Total number of products listed for resale",
		"{products}",
	)
	if err != nil {
		return nil, err
	}

	bm.orderCreatedTotal, err = NewCounter(cfg.Meter,
		"rz_order_created_total",
		"Total number of orders placed",
		"{orders}",
	)
	if err != nil {
		return nil, err
	}

	bm.orderRejectedTotal, err = NewCounter(cfg.Meter,
		"rz_order_rejected_total",
		"Orders refused because the product was missing or sold out",
		"{orders}",
	)
	if err != nil {
		return nil, err
	}

	bm.orderAmount, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "rz_order_amount",
		Description: "Distribution of order prices",
		Unit:        "{USD}",
		Boundaries:  AmountBuckets,
	})
	if err != nil {
		return nil, err
	}

	bm.paymentIntentTotal, err = NewCounter(cfg.Meter,
		"rz_payment_intent_total",
		"Total number of payment intents requested",
		"{intents}",
	)
	if err != nil {
		return nil, err
	}

	bm.paymentCapturedTotal, err = NewCounter(cfg.Meter,
		"rz_payment_captured_total",
		"Total number of payment capture attempts",
		"{payments}",
	)
	if err != nil {
		return nil, err
	}

	bm.paymentAmountCents, err = NewCounter(cfg.Meter,
		"rz_payment_amount_cents_total",
		"Total captured payment amount in cents",
		"{cents}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// PaymentStatus represents the outcome of a payment step for metrics labeling.
type PaymentStatus string

const (
	PaymentStatusSuccess     PaymentStatus = "success"
	PaymentStatusFailed      PaymentStatus = "failed"
	PaymentStatusAlreadyPaid PaymentStatus = "already_paid"
	PaymentStatusRejected    PaymentStatus = "rejected"
)

// OrderOutcome labels refused orders.
type OrderOutcome string

const (
	OrderOutcomeSoldOut  OrderOutcome = "sold_out"
	OrderOutcomeNotFound OrderOutcome = "not_found"
)

// RecordProductListed records a new listing in the given category.
func (bm *BusinessMetrics) RecordProductListed(ctx context.Context, category string) {
	bm.productListedTotal.Inc(ctx, AttrCategory.String(category))
}

// RecordOrderCreated records a placed order and its snapshot price.
func (bm *BusinessMetrics) RecordOrderCreated(ctx context.Context, price decimal.Decimal) {
	bm.orderCreatedTotal.Inc(ctx)
	bm.orderAmount.Record(ctx, price.InexactFloat64())
}

// RecordOrderRejected records an order refused before it was written.
func (bm *BusinessMetrics) RecordOrderRejected(ctx context.Context, outcome OrderOutcome) {
	bm.orderRejectedTotal.Inc(ctx, AttrOutcome.String(string(outcome)))
}

// RecordPaymentIntent records a payment intent request.
func (bm *BusinessMetrics) RecordPaymentIntent(ctx context.Context, currency string, status PaymentStatus) {
	bm.paymentIntentTotal.Inc(ctx,
		AttrCurrency.String(currency),
		AttrPaymentStatus.String(string(status)),
	)
}

// RecordPaymentCaptured records a payment capture attempt. Amounts are only
// accumulated for successful captures.
func (bm *BusinessMetrics) RecordPaymentCaptured(ctx context.Context, amount decimal.Decimal, status PaymentStatus) {
	bm.paymentCapturedTotal.Inc(ctx, AttrPaymentStatus.String(string(status)))
	if status == PaymentStatusSuccess {
		bm.paymentAmountCents.Add(ctx, amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}
}

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
