package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type listing struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"size:100"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&listing{}))
	return db
}

func setupRecorder(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp, sr
}

func attrsOf(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := map[attribute.Key]attribute.Value{}
	for _, a := range span.Attributes() {
		m[a.Key] = a.Value
	}
	return m
}

func TestDefaultDBTracingConfig(t *testing.T) {
	cfg := DefaultDBTracingConfig()

	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.LogFullSQL)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThresh)
	assert.Equal(t, "postgresql", cfg.DBSystem)
}

func TestDBSystemForDriver(t *testing.T) {
	assert.Equal(t, "sqlite", DBSystemForDriver("sqlite"))
	assert.Equal(t, "postgresql", DBSystemForDriver("postgres"))
	assert.Equal(t, "postgresql", DBSystemForDriver(""))
}

func TestNewDBTracingPlugin_Defaults(t *testing.T) {
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true}, nil)

	assert.Equal(t, 200*time.Millisecond, plugin.config.SlowQueryThresh)
	assert.NotNil(t, plugin.logger)
}

func TestDBTracingPlugin_RegisterOtelGorm_Disabled(t *testing.T) {
	db := setupTestDB(t)

	plugin := NewDBTracingPlugin(DefaultDBTracingConfig(), zap.NewNop())
	require.NoError(t, plugin.RegisterOtelGorm(db))

	assert.Nil(t, db.Callback().Query().Get("otel_slow_query:query"))
}

func TestDBTracingPlugin_RegisterOtelGorm_Twice(t *testing.T) {
	db := setupTestDB(t)

	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true, DBSystem: "sqlite"}, zap.NewNop())
	require.NoError(t, plugin.RegisterOtelGorm(db))
	assert.NotNil(t, db.Callback().Query().Get("otel_slow_query:query"))

	assert.Error(t, plugin.RegisterOtelGorm(db))
}

func TestDBTracingPlugin_CreatesChildSpans(t *testing.T) {
	db := setupTestDB(t)
	tp, sr := setupRecorder(t)

	// otelgorm resolves its tracer at plugin construction time from the global provider.
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true, DBSystem: "sqlite"}, zap.NewNop())
	withGlobalTracerProvider(t, tp, func() {
		require.NoError(t, plugin.RegisterOtelGorm(db))
	})

	ctx, parent := tp.Tracer("test").Start(context.Background(), "product.create")
	require.NoError(t, db.WithContext(ctx).Create(&listing{Title: "bike"}).Error)
	parent.End()

	spans := sr.Ended()
	require.GreaterOrEqual(t, len(spans), 2)
	assert.Equal(t, parent.SpanContext().TraceID(), spans[0].SpanContext().TraceID())
}

func TestAnnotateStatementSpan_RowsAndTable(t *testing.T) {
	db := setupTestDB(t)
	tp, sr := setupRecorder(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "bulk-insert")
	result := db.WithContext(ctx).Create(&[]listing{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	require.NoError(t, result.Error)

	annotateStatementSpan(result, time.Hour)
	span.End()

	attrs := attrsOf(sr.Ended()[0])
	assert.Equal(t, int64(3), attrs["db.rows_affected"].AsInt64())
	assert.Equal(t, "listings", attrs["db.sql.table"].AsString())
	assert.NotContains(t, attrs, attribute.Key("db.slow_query"))
}

func TestAnnotateStatementSpan_NotFoundIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	tp, sr := setupRecorder(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "lookup")
	var found listing
	tx := db.WithContext(ctx).First(&found, 99999)
	require.ErrorIs(t, tx.Error, gorm.ErrRecordNotFound)

	annotateStatementSpan(tx, time.Hour)
	span.End()

	assert.NotEqual(t, codes.Error, sr.Ended()[0].Status().Code)
}

func TestAnnotateStatementSpan_SlowQuery(t *testing.T) {
	db := setupTestDB(t)
	tp, sr := setupRecorder(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "slow")
	ctx = WithQueryStartTime(ctx)
	time.Sleep(2 * time.Millisecond)

	var found []listing
	tx := db.WithContext(ctx).Find(&found)
	require.NoError(t, tx.Error)

	annotateStatementSpan(tx, time.Nanosecond)
	span.End()

	recorded := sr.Ended()[0]
	assert.True(t, attrsOf(recorded)["db.slow_query"].AsBool())
	require.NotEmpty(t, recorded.Events())
	assert.Equal(t, "slow_query_warning", recorded.Events()[0].Name)
}

func TestAnnotateStatementSpan_NoSpan(t *testing.T) {
	db := setupTestDB(t)

	assert.NotPanics(t, func() {
		annotateStatementSpan(db.WithContext(context.Background()).Find(&[]listing{}), time.Nanosecond)
	})
}

func TestWithQueryStartTime(t *testing.T) {
	ctx := WithQueryStartTime(context.Background())

	startTime, ok := ctx.Value(queryStartTimeKey).(time.Time)
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now(), startTime, time.Second)
}
