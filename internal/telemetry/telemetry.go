package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/rocketscienceinc/tictactoe/internal/config"
)

const (
	serviceName    = "tictactoe"
	serviceVersion = "v0.1.0"

	shutdownTimeout = 5 * time.Second
)

// Shutdown flushes pending spans and releases the exporter.
type Shutdown func(context.Context) error

// InitTracing installs a global tracer provider writing spans as JSON lines to conf.File.
// With tracing disabled the global no-op provider stays in place.
func InitTracing(conf config.Tracing) (Shutdown, error) {
	if !conf.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	file, err := os.OpenFile(conf.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}

	shutdown, err := InitTracingTo(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return func(ctx context.Context) error {
		shutdownErr := shutdown(ctx)
		if err := file.Close(); err != nil && shutdownErr == nil {
			return fmt.Errorf("failed to close trace file: %w", err)
		}
		return shutdownErr
	}, nil
}

// InitTracingTo is InitTracing with an explicit writer.
func InitTracingTo(w io.Writer) (Shutdown, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown TracerProvider: %w", err)
		}
		return nil
	}, nil
}
