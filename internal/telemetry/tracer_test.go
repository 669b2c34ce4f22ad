package telemetry_test

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/config"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupTracer_WithoutExporter(t *testing.T) {
	ctx := context.Background()

	shutdown, err := telemetry.SetupTracer(ctx, "test", config.OTel{ServiceName: "vendor-marketplace", SamplerRatio: 1})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(ctx, "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, shutdown(ctx))
}

func TestSetupTracer_WithExporter(t *testing.T) {
	ctx := context.Background()

	shutdown, err := telemetry.SetupTracer(ctx, "test", config.OTel{
		ServiceName:      "vendor-marketplace",
		ExporterEndpoint: "http://127.0.0.1:4318",
		SamplerRatio:     0,
	})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(ctx, "op")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()

	assert.NoError(t, shutdown(ctx))
}
