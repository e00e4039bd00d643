package otel

import (
	"context"
	"errors"
	"log/slog"
	"os"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

// Setup installs OTLP trace, metric and log providers when telemetry is
// enabled. Without TELEMETRY only the default slog level is adjusted.
func Setup(ctx context.Context, name string) error {
	level := slog.LevelInfo

	if EnableDebug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if !EnableTelemetry {
		return nil
	}

	resource, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL,
			semconv.ServiceName(name),
		),
	)

	if err != nil {
		return err
	}

	return errors.Join(
		setupTracer(ctx, resource),
		setupMeter(ctx, resource),
		setupLogger(ctx, resource),
	)
}
