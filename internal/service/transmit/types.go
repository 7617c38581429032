package transmit

import "github.com/KasumiMercury/digico-snapshot-builder/internal/domain"

const reasonCancelled = "cancelled before send"

type Report struct {
	OperationID string                      `json:"operation_id"`
	PlanID      string                      `json:"plan_id"`
	Destination domain.Destination          `json:"destination"`
	SentCount   int                         `json:"sent_count"`
	FailedCount int                         `json:"failed_count"`
	Results     []domain.TransmissionResult `json:"results"`
}

func (r *Report) AllSent() bool {
	return r.FailedCount == 0
}
