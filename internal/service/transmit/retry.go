package transmit

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

const defaultRetryBackoff = 100 * time.Millisecond

// retryingTransport wraps each session so a failed entry is re-sent up to
// maxAttempts times with exponential backoff. Re-sending is safe because the
// messages address the slot by index.
type retryingTransport struct {
	next        domain.ConsoleTransport
	maxAttempts int
	backoff     time.Duration
}

func NewRetryingTransport(next domain.ConsoleTransport, maxAttempts int, backoff time.Duration) domain.ConsoleTransport {
	if maxAttempts <= 1 {
		return next
	}
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	return &retryingTransport{
		next:        next,
		maxAttempts: maxAttempts,
		backoff:     backoff,
	}
}

func (t *retryingTransport) Open(ctx context.Context, dest domain.Destination) (domain.ConsoleSession, error) {
	session, err := t.next.Open(ctx, dest)
	if err != nil {
		return nil, err
	}
	return &retryingSession{
		next:        session,
		maxAttempts: t.maxAttempts,
		backoff:     t.backoff,
	}, nil
}

type retryingSession struct {
	next        domain.ConsoleSession
	maxAttempts int
	backoff     time.Duration
}

func (s *retryingSession) SendEntry(ctx context.Context, entry domain.SnapshotEntry) error {
	var lastErr error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * s.backoff
			slog.DebugContext(ctx, "retrying snapshot entry",
				slog.Int("index", entry.Index),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w (retry cancelled: %v)", lastErr, ctx.Err())
			case <-time.After(backoff):
			}
		}

		err := s.next.SendEntry(ctx, entry)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	return fmt.Errorf("failed after %d attempts: %w", s.maxAttempts, lastErr)
}

func (s *retryingSession) Close() error {
	return s.next.Close()
}
