package transmit

import (
	"sync"
	"time"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

// Registry keeps operations addressable between confirmation and send, and
// long enough afterwards for the caller to read the results. Operations that
// are never sent expire after the same retention.
type Registry struct {
	mu         sync.Mutex
	operations map[string]*Operation
	retention  time.Duration
	now        func() time.Time
}

func NewRegistry(retention time.Duration) *Registry {
	return &Registry{
		operations: make(map[string]*Operation),
		retention:  retention,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *Registry) Add(op *Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked()
	r.operations[op.ID()] = op
}

func (r *Registry) Get(id string) (*Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op, ok := r.operations[id]
	if !ok {
		return nil, domain.ErrOperationNotFound
	}
	return op, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.operations, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.operations)
}

func (r *Registry) pruneLocked() {
	if r.retention <= 0 {
		return
	}
	cutoff := r.now().Add(-r.retention)
	for id, op := range r.operations {
		if op.expiredBefore(cutoff) {
			delete(r.operations, id)
		}
	}
}
