// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/fisherfans/backend/internal/config"
)

func TestRecordSpanError(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tracer := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)).Tracer("test")

	ctx, span := tracer.Start(context.Background(), "business")
	RecordSpanError(ctx, NewBusinessError(ErrCapacityExceeded, CodeCapacityExceeded, "full"))
	assert.NotEmpty(t, TraceIDFromContext(ctx))
	span.End()

	ctx, span = tracer.Start(context.Background(), "internal")
	RecordSpanError(ctx, errors.New("connection reset"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 2)

	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "business_rule_rejected", ended[0].Events()[0].Name)

	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, "connection reset", ended[1].Status().Description)
}

func TestTelemetryDisabledIsInert(t *testing.T) {
	tel, err := NewTelemetry(context.Background(),
		config.OtelConfig{Enabled: false, ServiceName: "fisherfans-api"},
		config.AppConfig{Version: "test"},
	)
	require.NoError(t, err)

	ctx, span := tel.Tracer.Start(context.Background(), "noop")
	assert.Empty(t, TraceIDFromContext(ctx))
	span.End()

	assert.NoError(t, tel.Shutdown(context.Background()))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
