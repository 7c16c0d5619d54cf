package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/Aidin1998/hello-service/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupDisabled(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupTracingExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		Tracing: true,
		Writer:  &buf,
	})
	require.NoError(t, err)

	_, span := otel.Tracer("telemetry-test").Start(context.Background(), "greet")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "greet")
}

func TestSetupMetricsFlushesOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		Metrics: true,
		Writer:  &buf,
	})
	require.NoError(t, err)

	counter, err := otel.Meter("telemetry-test").Int64Counter("greetings")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "greetings")
}
