package domain

import (
	"time"
)

// Outcome is the per-entry result of a send operation.
type Outcome string

const (
	OutcomeSent   Outcome = "sent"
	OutcomeFailed Outcome = "failed"
)

func (o Outcome) String() string {
	return string(o)
}

func (o Outcome) IsSent() bool {
	return o == OutcomeSent
}

type TransmissionResult struct {
	Position int     `json:"position"`
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Outcome  Outcome `json:"outcome"`
	Reason   string  `json:"reason,omitempty"`
}

func NewSentResult(entry SnapshotEntry) TransmissionResult {
	return TransmissionResult{
		Position: entry.Position,
		Index:    entry.Index,
		Name:     entry.Name,
		Outcome:  OutcomeSent,
	}
}

func NewFailedResult(entry SnapshotEntry, reason string) TransmissionResult {
	return TransmissionResult{
		Position: entry.Position,
		Index:    entry.Index,
		Name:     entry.Name,
		Outcome:  OutcomeFailed,
		Reason:   reason,
	}
}

// TransmissionSummaryRecord is the aggregate written to the send recorder
// after an operation completes.
type TransmissionSummaryRecord struct {
	OperationID string
	PlanID      string
	Destination string
	EntryCount  int
	SentCount   int
	FailedCount int
	FirstIndex  int
	StartedAt   time.Time
	Duration    time.Duration
}
