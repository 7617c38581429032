package osc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

type Config struct {
	// MessageInterval is the pause after each message. Consoles drop
	// messages that arrive in a tight burst.
	MessageInterval time.Duration
}

// Transport opens a UDP socket per send operation.
type Transport struct {
	messageInterval time.Duration
	dialer          *net.Dialer
}

func NewTransport(cfg Config) *Transport {
	return &Transport{
		messageInterval: cfg.MessageInterval,
		dialer:          &net.Dialer{},
	}
}

func (t *Transport) Open(ctx context.Context, dest domain.Destination) (domain.ConsoleSession, error) {
	if err := dest.Validate(); err != nil {
		return nil, err
	}

	conn, err := t.dialer.DialContext(ctx, "udp", dest.Key())
	if err != nil {
		slog.ErrorContext(ctx, "failed to open osc socket",
			slog.String("destination", dest.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to open osc socket to %s: %w", dest, err)
	}

	slog.DebugContext(ctx, "osc socket opened",
		slog.String("destination", dest.String()),
		slog.String("local_addr", conn.LocalAddr().String()),
	)

	return newSession(conn, t.messageInterval), nil
}

type session struct {
	mu       sync.Mutex
	conn     net.Conn
	interval time.Duration
	closed   bool
}

func newSession(conn net.Conn, interval time.Duration) *session {
	return &session{
		conn:     conn,
		interval: interval,
	}
}

// SendEntry writes both messages for the entry, one packet each. Once the
// first packet is written the second is always attempted; ctx only shortens
// the pause that follows the entry.
func (s *session) SendEntry(ctx context.Context, entry domain.SnapshotEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	packets, err := EncodeEntry(entry)
	if err != nil {
		return err
	}

	for i, packet := range packets {
		if _, err := s.conn.Write(packet); err != nil {
			slog.WarnContext(ctx, "osc write failed",
				slog.Int("index", entry.Index),
				slog.Int("message", i+1),
				slog.String("error", err.Error()),
			)
			return err
		}

		if i < len(packets)-1 {
			time.Sleep(s.interval)
			continue
		}
		pause(ctx, s.interval)
	}

	return nil
}

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
