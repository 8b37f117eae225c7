package telemetry

import (
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

func withGlobalTracerProvider(t *testing.T, tp trace.TracerProvider, fn func()) {
	t.Helper()
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(original)
	fn()
}
