//go:build !gcloud

package observability

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type exporterSet struct {
	span   sdktrace.SpanExporter
	metric sdkmetric.Exporter
}

// newExporters ships telemetry to an OTLP collector when one is configured.
func newExporters(ctx context.Context, _ Config) (exporterSet, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		slog.Debug("OTEL_EXPORTER_OTLP_ENDPOINT not set, telemetry export disabled")
		return exporterSet{}, nil
	}

	spanExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return exporterSet{}, err
	}

	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return exporterSet{}, err
	}

	return exporterSet{
		span:   spanExporter,
		metric: metricExporter,
	}, nil
}
