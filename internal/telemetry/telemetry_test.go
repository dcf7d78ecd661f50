package telemetry_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	"github.com/aaravmahajanofficial/storefront-studio/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupWithoutExporter(t *testing.T) {
	shutdown, err := telemetry.Setup(t.Context(), config.Otel{ServiceName: "storefront-studio", SamplerRatio: 1})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(t.Context(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, shutdown(t.Context()))
}
