package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of service spans
const TracerName = "recycle-zone"

// Span attribute keys used by the application services. Metric attribute keys
// live in metrics.go.
const (
	SpanAttrOrderID       = "order_id"
	SpanAttrProductID     = "product_id"
	SpanAttrBuyerEmail    = "buyer_email"
	SpanAttrTransactionID = "transaction_id"
	SpanAttrAmountMinor   = "amount_minor"
	SpanAttrCurrency      = "currency"
)

// StartServiceSpan starts an internal span named {service}.{method}, e.g.
// "payment.record", on the global tracer provider. The caller ends it.
func StartServiceSpan(ctx context.Context, service, method string) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx,
		service+"."+method,
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// SetAttributes adds alternating key, value pairs to span. Non-string keys
// and a trailing key without a value are skipped.
//
//	telemetry.SetAttributes(span,
//	    telemetry.SpanAttrOrderID, orderID.String(),
//	    telemetry.SpanAttrBuyerEmail, email,
//	)
func SetAttributes(span trace.Span, keyValues ...any) {
	if span == nil {
		return
	}
	span.SetAttributes(pairs(keyValues)...)
}

// AddEvent adds a named event with alternating key, value attributes
func AddEvent(span trace.Span, name string, keyValues ...any) {
	if span == nil {
		return
	}
	span.AddEvent(name, trace.WithAttributes(pairs(keyValues)...))
}

// RecordError records err on the span and marks it failed. Expected
// outcomes such as sold-out products are not errors and should not be
// recorded here.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetOK marks the span as successful.
func SetOK(span trace.Span) {
	if span == nil {
		return
	}
	span.SetStatus(codes.Ok, "")
}

func pairs(keyValues []any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(keyValues)/2)
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, toAttribute(key, keyValues[i+1]))
	}
	return attrs
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		// uuid.UUID and decimal.Decimal
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
