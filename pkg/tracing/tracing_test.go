package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTracer_DisabledIsNoop(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), Config{ServiceName: "storefront"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestInitTracer_EnabledInstallsProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := InitTracer(context.Background(), Config{
		ServiceName:    "storefront",
		ServiceVersion: "test",
		Environment:    "test",
		OTLPEndpoint:   "127.0.0.1:0",
		SampleRate:     1,
		Enabled:        true,
	})
	require.NoError(t, err)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tt := range tests {
		assert.Contains(t, Sampler(tt.rate).Description(), tt.want)
	}
}

func TestTracer_UsesModuleScope(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Tracer("service").Start(context.Background(), "op")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "github.com/utafrali/mangomarket/service", spans[0].InstrumentationScope.Name)
}
