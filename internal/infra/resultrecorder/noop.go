package resultrecorder

import (
	"context"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

// noopRecorder drops send-run summaries. NewRecorder selects it when
// TRANSMISSION_RESULTS_DISABLED is set or the backend is not configured.
type noopRecorder struct{}

func NewNoopRecorder() domain.TransmissionRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordTransmission(_ context.Context, _ domain.TransmissionSummaryRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
