package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const snapshotTracerName = "github.com/KasumiMercury/digico-snapshot-builder/internal/service"

func SnapshotTracer() trace.Tracer {
	return otel.Tracer(snapshotTracerName)
}

func StartBuildPlanSpan(ctx context.Context, sourceKey string, selectedCount, existingCount int) (context.Context, trace.Span) {
	return SnapshotTracer().Start(ctx, "snapshot.build_plan",
		trace.WithAttributes(
			attribute.String("plan.source_key", sourceKey),
			attribute.Int("plan.selected_count", selectedCount),
			attribute.Int("plan.existing_count", existingCount),
		),
	)
}

func StartSendPlanSpan(ctx context.Context, operationID, planID, destination string, entryCount int) (context.Context, trace.Span) {
	return SnapshotTracer().Start(ctx, "transmit.send_plan",
		trace.WithAttributes(
			attribute.String("operation.id", operationID),
			attribute.String("plan.id", planID),
			attribute.String("console.destination", destination),
			attribute.Int("plan.entry_count", entryCount),
		),
		trace.WithSpanKind(trace.SpanKindProducer),
	)
}

func StartSendEntrySpan(ctx context.Context, position, index int) (context.Context, trace.Span) {
	return SnapshotTracer().Start(ctx, "transmit.send_entry",
		trace.WithAttributes(
			attribute.Int("entry.position", position),
			attribute.Int("entry.index", index),
		),
		trace.WithSpanKind(trace.SpanKindProducer),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return SnapshotTracer().Start(ctx, "pco.fetch."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordBuildPlanResult(span trace.Span, entryCount int, err error) {
	span.SetAttributes(attribute.Int("plan.entry_count", entryCount))
	recordStatus(span, err)
}

func RecordSendPlanResult(span trace.Span, sentCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("send.sent_count", sentCount),
		attribute.Int("send.failed_count", failedCount),
	)
	recordStatus(span, err)
}

func RecordEntryResult(span trace.Span, err error) {
	recordStatus(span, err)
}

func RecordExternalAPIResult(span trace.Span, statusCode int, err error) {
	if statusCode > 0 {
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
	}
	recordStatus(span, err)
}

func recordStatus(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
