package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitProvider_Disabled(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestTracer_NoopWithoutProvider(t *testing.T) {
	_, span := Tracer().Start(context.Background(), "test")
	defer span.End()
	assert.False(t, span.SpanContext().IsSampled())
}

func TestInitProvider_FailureReturnsCallableShutdown(t *testing.T) {
	origTracer, origLogger := newTracerProvider, newLoggerProvider
	t.Cleanup(func() { newTracerProvider, newLoggerProvider = origTracer, origLogger })

	tests := []struct {
		name   string
		tracer func(context.Context, Config, *resource.Resource) (*sdktrace.TracerProvider, error)
		logger func(context.Context, Config, *resource.Resource) (*sdklog.LoggerProvider, error)
	}{
		{
			name: "tracer provider fails",
			tracer: func(context.Context, Config, *resource.Resource) (*sdktrace.TracerProvider, error) {
				return nil, errors.New("exporter unavailable")
			},
			logger: origLogger,
		},
		{
			name: "logger provider fails",
			tracer: func(context.Context, Config, *resource.Resource) (*sdktrace.TracerProvider, error) {
				return sdktrace.NewTracerProvider(), nil
			},
			logger: func(context.Context, Config, *resource.Resource) (*sdklog.LoggerProvider, error) {
				return nil, errors.New("exporter unavailable")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newTracerProvider, newLoggerProvider = tt.tracer, tt.logger

			shutdown, err := InitProvider(context.Background(), Config{
				Enabled:      true,
				ServiceName:  "receipt-test",
				OTLPEndpoint: "http://localhost:4318",
			})

			require.Error(t, err)
			require.NotNil(t, shutdown)
			assert.NoError(t, shutdown(context.Background()))
		})
	}
}
