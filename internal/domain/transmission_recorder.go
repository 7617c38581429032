package domain

import "context"

//go:generate mockgen -source=transmission_recorder.go -destination=transmission_recorder_mock.go -package=domain

type TransmissionRecorder interface {
	RecordTransmission(ctx context.Context, record TransmissionSummaryRecord) error
	Flush(ctx context.Context) error
	Close() error
}
