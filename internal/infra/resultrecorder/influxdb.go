//go:build !gcloud

package resultrecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

const transmissionMeasurement = "snapshot_transmission"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.TransmissionRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "transmission result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, transmission result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "transmission result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
	}, nil
}

func (r *influxDBRecorder) RecordTransmission(ctx context.Context, record domain.TransmissionSummaryRecord) error {
	if err := r.writeAPI.WritePoint(ctx, transmissionPoint(record)); err != nil {
		slog.WarnContext(ctx, "failed to write transmission result to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("operation_id", record.OperationID),
		)
	}

	return nil
}

func transmissionPoint(record domain.TransmissionSummaryRecord) *write.Point {
	return influxdb2.NewPoint(
		transmissionMeasurement,
		map[string]string{
			"destination": record.Destination,
			"plan_id":     record.PlanID,
		},
		map[string]any{
			"operation_id": record.OperationID,
			"entry_count":  record.EntryCount,
			"sent_count":   record.SentCount,
			"failed_count": record.FailedCount,
			"first_index":  record.FirstIndex,
			"duration_ms":  record.Duration.Milliseconds(),
		},
		record.StartedAt,
	)
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
