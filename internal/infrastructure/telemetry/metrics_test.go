package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/recyclezone/marketplace/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMeterProvider(t *testing.T) (*telemetry.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp, err := telemetry.NewMeterProviderWithReader(telemetry.MetricsConfig{
		ServiceName: "recycle-zone-test",
	}, reader, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	return mp, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumTotal(t *testing.T, m *metricdata.Metrics) int64 {
	t.Helper()
	require.NotNil(t, m)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	ctx := context.Background()
	cfg := telemetry.MetricsConfig{
		Enabled:           false,
		CollectorEndpoint: "localhost:4317",
		ServiceName:       "recycle-zone-test",
	}

	mp, err := telemetry.NewMeterProvider(ctx, cfg, nil)
	require.NoError(t, err)

	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("test"))
	assert.NoError(t, mp.Shutdown(ctx))
}

func TestNewMeterProviderWithReader(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	assert.True(t, mp.IsEnabled())

	c, err := telemetry.NewCounter(mp.Meter("test"), "rz_resource_total", "", "1")
	require.NoError(t, err)
	c.Inc(context.Background())

	var serviceName string
	for _, attr := range collect(t, reader).Resource.Attributes() {
		if attr.Key == "service.name" {
			serviceName = attr.Value.AsString()
		}
	}
	assert.Equal(t, "recycle-zone-test", serviceName)
}

func TestCounter(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	ctx := context.Background()

	c, err := telemetry.NewCounter(mp.Meter("test"), "rz_test_total", "test counter", "{things}")
	require.NoError(t, err)

	c.Inc(ctx, telemetry.AttrCategory.String("Phones"))
	c.Add(ctx, 4, telemetry.AttrCategory.String("Phones"))
	c.Inc(ctx, telemetry.AttrCategory.String("Books"))

	m := findMetric(collect(t, reader), "rz_test_total")
	assert.Equal(t, int64(6), sumTotal(t, m))
	assert.Len(t, m.Data.(metricdata.Sum[int64]).DataPoints, 2)
	assert.Equal(t, "{things}", m.Unit)
}

func TestHistogram(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	ctx := context.Background()

	h, err := telemetry.NewHistogram(mp.Meter("test"), telemetry.HistogramOpts{
		Name:        "rz_test_duration_seconds",
		Description: "test histogram",
		Unit:        "s",
		Boundaries:  telemetry.HTTPDurationBuckets,
	})
	require.NoError(t, err)

	h.Record(ctx, 0.02)
	h.RecordDuration(ctx, 300*time.Millisecond)

	m := findMetric(collect(t, reader), "rz_test_duration_seconds")
	require.NotNil(t, m)
	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
	assert.Equal(t, telemetry.HTTPDurationBuckets, hist.DataPoints[0].Bounds)
	assert.InDelta(t, 0.32, hist.DataPoints[0].Sum, 1e-9)
}
