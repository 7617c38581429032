//go:build gcloud

package resultrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt  time.Time `bigquery:"recorded_at"`
	StartedAt   time.Time `bigquery:"started_at"`
	OperationID string    `bigquery:"operation_id"`
	PlanID      string    `bigquery:"plan_id"`
	Destination string    `bigquery:"destination"`
	EntryCount  int64     `bigquery:"entry_count"`
	SentCount   int64     `bigquery:"sent_count"`
	FailedCount int64     `bigquery:"failed_count"`
	FirstIndex  int64     `bigquery:"first_index"`
	DurationMs  int64     `bigquery:"duration_ms"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.TransmissionRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "transmission result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, transmission result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, transmission result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "transmission result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
	}, nil
}

func (r *bigQueryRecorder) RecordTransmission(ctx context.Context, record domain.TransmissionSummaryRecord) error {
	row := &bigQueryRecord{
		RecordedAt:  time.Now(),
		StartedAt:   record.StartedAt,
		OperationID: record.OperationID,
		PlanID:      record.PlanID,
		Destination: record.Destination,
		EntryCount:  int64(record.EntryCount),
		SentCount:   int64(record.SentCount),
		FailedCount: int64(record.FailedCount),
		FirstIndex:  int64(record.FirstIndex),
		DurationMs:  record.Duration.Milliseconds(),
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert transmission result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("operation_id", record.OperationID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
