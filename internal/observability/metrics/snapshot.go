package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	snapshotMeterName = "snapshot.service"
)

type SnapshotMetrics struct {
	plansBuilt         metric.Int64Counter
	buildDuration      metric.Float64Histogram
	entriesTransmitted metric.Int64Counter
	sendDuration       metric.Float64Histogram
	sendsRejected      metric.Int64Counter
}

func NewSnapshotMetrics() (*SnapshotMetrics, error) {
	meter := otel.Meter(snapshotMeterName)

	plansBuilt, err := meter.Int64Counter(
		"snapshot_plans_built_total",
		metric.WithDescription("Total number of snapshot plan builds"),
		metric.WithUnit("{plan}"),
	)
	if err != nil {
		return nil, err
	}

	buildDuration, err := meter.Float64Histogram(
		"snapshot_plan_build_duration_seconds",
		metric.WithDescription("Time spent building a snapshot plan"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	entriesTransmitted, err := meter.Int64Counter(
		"snapshot_entries_transmitted_total",
		metric.WithDescription("Total number of snapshot entries transmitted to the console"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	sendDuration, err := meter.Float64Histogram(
		"snapshot_send_duration_seconds",
		metric.WithDescription("Send operation duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	sendsRejected, err := meter.Int64Counter(
		"snapshot_sends_rejected_total",
		metric.WithDescription("Send requests rejected before any entry was attempted"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	return &SnapshotMetrics{
		plansBuilt:         plansBuilt,
		buildDuration:      buildDuration,
		entriesTransmitted: entriesTransmitted,
		sendDuration:       sendDuration,
		sendsRejected:      sendsRejected,
	}, nil
}

func (m *SnapshotMetrics) RecordPlanBuilt(ctx context.Context, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.plansBuilt.Add(ctx, 1, attrs)
	m.buildDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *SnapshotMetrics) RecordEntryTransmitted(ctx context.Context, outcome string) {
	m.entriesTransmitted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *SnapshotMetrics) RecordSendDuration(ctx context.Context, duration time.Duration) {
	m.sendDuration.Record(ctx, duration.Seconds())
}

func (m *SnapshotMetrics) RecordSendRejected(ctx context.Context, reason string) {
	m.sendsRejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}
