package resultrecorder

import (
	"context"
	"testing"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TRANSMISSION_RESULTS_DISABLED", "")
	t.Setenv("INFLUXDB_BUCKET", "")
	t.Setenv("BIGQUERY_TABLE", "")

	cfg := LoadConfig()
	if cfg.Disabled {
		t.Error("expected recording enabled by default")
	}
	if cfg.InfluxDBBucket != "snapshot_transmissions" {
		t.Errorf("unexpected bucket %q", cfg.InfluxDBBucket)
	}
	if cfg.BigQueryTable != "transmissions" {
		t.Errorf("unexpected table %q", cfg.BigQueryTable)
	}
}

func TestNewRecorderDisabledReturnsNoop(t *testing.T) {
	recorder, err := NewRecorder(context.Background(), &Config{Disabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := recorder.(*noopRecorder); !ok {
		t.Fatalf("expected noop recorder, got %T", recorder)
	}

	if err := recorder.RecordTransmission(context.Background(), domain.TransmissionSummaryRecord{OperationID: "op"}); err != nil {
		t.Errorf("unexpected record error: %v", err)
	}
	if err := recorder.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}
