package transmit

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

// Operation is a single send of one plan to one destination. It is never
// reused: once Completed, a new Operation is required.
type Operation struct {
	mu          sync.Mutex
	id          string
	plan        *domain.SnapshotPlan
	dest        domain.Destination
	state       State
	results     []domain.TransmissionResult
	err         error
	createdAt   time.Time
	startedAt   time.Time
	completedAt time.Time
}

func NewOperation(plan *domain.SnapshotPlan, dest domain.Destination) (*Operation, error) {
	if err := dest.Validate(); err != nil {
		return nil, err
	}

	return &Operation{
		id:        uuid.NewString(),
		plan:      plan,
		dest:      dest,
		state:     StateIdle,
		createdAt: time.Now().UTC(),
	}, nil
}

func (o *Operation) ID() string {
	return o.id
}

func (o *Operation) Plan() *domain.SnapshotPlan {
	return o.plan
}

func (o *Operation) Destination() domain.Destination {
	return o.dest
}

func (o *Operation) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// RequestConfirmation records explicit user intent to send.
func (o *Operation) RequestConfirmation() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateIdle {
		return domain.ErrInvalidTransition
	}
	o.state = StateConfirming
	return nil
}

// Abandon backs out of confirmation without side effects.
func (o *Operation) Abandon() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateConfirming {
		return domain.ErrInvalidTransition
	}
	o.state = StateIdle
	return nil
}

// sendable reports the error beginSending would return, without changing state.
func (o *Operation) sendable() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return sendableState(o.state)
}

func sendableState(state State) error {
	switch state {
	case StateConfirming:
		return nil
	case StateIdle:
		return domain.ErrNotConfirmed
	default:
		return domain.ErrInvalidTransition
	}
}

func (o *Operation) beginSending(now time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := sendableState(o.state); err != nil {
		return err
	}
	o.state = StateSending
	o.startedAt = now
	return nil
}

func (o *Operation) complete(results []domain.TransmissionResult, err error, now time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.results = results
	o.err = err
	o.state = StateCompleted
	o.completedAt = now
}

// expiredBefore reports whether the operation can be dropped: completed
// before t, or never sent and created before t.
func (o *Operation) expiredBefore(t time.Time) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateCompleted:
		return o.completedAt.Before(t)
	case StateIdle, StateConfirming:
		return o.createdAt.Before(t)
	default:
		return false
	}
}

// View is a point-in-time copy of an operation for reporting.
type View struct {
	ID          string                      `json:"id"`
	PlanID      string                      `json:"plan_id"`
	Destination domain.Destination          `json:"destination"`
	State       State                       `json:"state"`
	EntryCount  int                         `json:"entry_count"`
	SentCount   int                         `json:"sent_count"`
	FailedCount int                         `json:"failed_count"`
	Results     []domain.TransmissionResult `json:"results"`
	Error       string                      `json:"error,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	StartedAt   *time.Time                  `json:"started_at,omitempty"`
	CompletedAt *time.Time                  `json:"completed_at,omitempty"`
}

func (o *Operation) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()

	results := make([]domain.TransmissionResult, len(o.results))
	copy(results, o.results)
	sent, failed := countOutcomes(results)

	v := View{
		ID:          o.id,
		PlanID:      o.plan.ID(),
		Destination: o.dest,
		State:       o.state,
		EntryCount:  o.plan.Len(),
		SentCount:   sent,
		FailedCount: failed,
		Results:     results,
		CreatedAt:   o.createdAt,
	}
	if o.err != nil {
		v.Error = o.err.Error()
	}
	if !o.startedAt.IsZero() {
		startedAt := o.startedAt
		v.StartedAt = &startedAt
	}
	if !o.completedAt.IsZero() {
		completedAt := o.completedAt
		v.CompletedAt = &completedAt
	}
	return v
}

func countOutcomes(results []domain.TransmissionResult) (sent, failed int) {
	for _, r := range results {
		if r.Outcome.IsSent() {
			sent++
		} else {
			failed++
		}
	}
	return sent, failed
}
