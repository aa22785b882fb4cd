package commandinit

import (
	"context"
	"fmt"

	"github.com/artuross/exprcalc/internal/defaults"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "exprcalc"

type ShutdownFunc func(ctx context.Context) error

func noopShutdown(_ context.Context) error {
	return nil
}

// NewOpenTelemetry returns the noop provider unless export is enabled. The
// exporter is configured with the standard OTEL_EXPORTER_OTLP_* variables.
func NewOpenTelemetry(ctx context.Context, cfg *Config) (trace.TracerProvider, ShutdownFunc, error) {
	if !cfg.OpenTelemetry {
		return defaults.TracerProvider, noopShutdown, nil
	}

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithCompressor("gzip"))
	if err != nil {
		return nil, noopShutdown, fmt.Errorf("create OTEL exporter: %w", err)
	}

	resource, err := sdkresource.New(
		ctx,
		sdkresource.WithTelemetrySDK(),
		sdkresource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(cfg.Version),
		),
	)
	if err != nil {
		return nil, noopShutdown, fmt.Errorf("create OTEL resource: %w", err)
	}

	// a CLI run is short, so spans are exported in one batch on shutdown
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(
			exporter,
			sdktrace.WithBlocking(),
			sdktrace.WithMaxQueueSize(1000),
		),
		sdktrace.WithResource(resource),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return tracerProvider, tracerProvider.Shutdown, nil
}
