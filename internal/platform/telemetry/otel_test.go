package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestNew_DisabledIsNoop(t *testing.T) {
	before := otel.GetTracerProvider()

	p, err := New(context.Background(), &Config{Enabled: false, Endpoint: "otel-collector:4317"})
	require.NoError(t, err)

	assert.Nil(t, p.tracerProvider)
	assert.Nil(t, p.meterProvider)
	assert.Same(t, before, otel.GetTracerProvider())
	assert.NoError(t, p.Shutdown(context.Background()))
}
