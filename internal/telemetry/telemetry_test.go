package telemetry

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/rocketscienceinc/tictactoe/internal/config"
)

func TestInitTracingTo(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	// Given: tracing into a buffer
	var buf bytes.Buffer
	shutdown, err := InitTracingTo(&buf)
	require.NoError(t, err)

	// When: a span is recorded and the provider is shut down
	_, span := otel.Tracer("test").Start(context.Background(), "GameManager.MakeTurn")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	// Then: the span was exported with the service name
	assert.Contains(t, buf.String(), `"Name":"GameManager.MakeTurn"`)
	assert.Contains(t, buf.String(), serviceName)
}

func TestInitTracing(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	t.Run("Disabled does nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "traces.json")

		shutdown, err := InitTracing(config.Tracing{Enabled: false, File: path})
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))

		assert.NoFileExists(t, path)
	})

	t.Run("Enabled writes to the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "traces.json")

		shutdown, err := InitTracing(config.Tracing{Enabled: true, File: path})
		require.NoError(t, err)

		_, span := otel.Tracer("test").Start(context.Background(), "BotService.MakeTurn")
		span.End()
		require.NoError(t, shutdown(context.Background()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "BotService.MakeTurn")
	})
}
