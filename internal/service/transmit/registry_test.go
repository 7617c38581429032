package transmit

import (
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

func TestRegistryAddGet(t *testing.T) {
	registry := NewRegistry(time.Hour)

	op, err := NewOperation(testPlan("A"), domain.NewDestination("10.0.0.2", 8000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	registry.Add(op)

	got, err := registry.Get(op.ID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != op {
		t.Error("expected the registered operation")
	}

	if _, err := registry.Get("missing"); !errors.Is(err, domain.ErrOperationNotFound) {
		t.Errorf("expected ErrOperationNotFound, got %v", err)
	}

	registry.Remove(op.ID())
	if registry.Len() != 0 {
		t.Errorf("expected empty registry, got %d", registry.Len())
	}
}

func TestRegistryPrunesCompletedOperations(t *testing.T) {
	registry := NewRegistry(time.Minute)
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }

	dest := domain.NewDestination("10.0.0.2", 8000)

	old, _ := NewOperation(testPlan("A"), dest)
	old.complete(nil, nil, now.Add(-2*time.Minute))

	recent, _ := NewOperation(testPlan("B"), dest)
	recent.complete(nil, nil, now.Add(-30*time.Second))

	pending, _ := NewOperation(testPlan("C"), dest)

	registry.Add(old)
	registry.Add(recent)
	registry.Add(pending)

	fresh, _ := NewOperation(testPlan("D"), dest)
	registry.Add(fresh)

	if _, err := registry.Get(old.ID()); !errors.Is(err, domain.ErrOperationNotFound) {
		t.Errorf("expected expired operation to be pruned, got %v", err)
	}
	for _, op := range []*Operation{recent, pending, fresh} {
		if _, err := registry.Get(op.ID()); err != nil {
			t.Errorf("expected operation %s to be kept, got %v", op.ID(), err)
		}
	}
}

func TestRegistryExpiresUnsentOperations(t *testing.T) {
	registry := NewRegistry(time.Minute)
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }

	dest := domain.NewDestination("10.0.0.2", 8000)

	stale := confirmedOperation(t, testPlan("A"), dest)
	stale.createdAt = now.Add(-5 * time.Minute)

	sending := confirmedOperation(t, testPlan("B"), dest)
	sending.createdAt = now.Add(-5 * time.Minute)
	if err := sending.beginSending(now.Add(-4 * time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	waiting := confirmedOperation(t, testPlan("C"), dest)
	waiting.createdAt = now.Add(-10 * time.Second)

	registry.Add(stale)
	registry.Add(sending)
	registry.Add(waiting)

	if _, err := registry.Get(stale.ID()); !errors.Is(err, domain.ErrOperationNotFound) {
		t.Errorf("expected stale Confirming operation to be pruned, got %v", err)
	}
	for _, op := range []*Operation{sending, waiting} {
		if _, err := registry.Get(op.ID()); err != nil {
			t.Errorf("expected operation in state %s to be kept, got %v", op.State(), err)
		}
	}
}
