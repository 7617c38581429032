package domain

import "context"

//go:generate mockgen -source=console_transport.go -destination=console_transport_mock.go -package=domain

// ConsoleTransport opens one session per send operation.
type ConsoleTransport interface {
	Open(ctx context.Context, dest Destination) (ConsoleSession, error)
}

// ConsoleSession emits the protocol messages for one entry at a time.
// SendEntry returns once the local send calls complete; nothing is acknowledged by the console.
type ConsoleSession interface {
	SendEntry(ctx context.Context, entry SnapshotEntry) error
	Close() error
}
