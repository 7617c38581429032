package snapshot

import (
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/service/allocator"
)

type Options struct {
	// AllowEmpty permits an empty selection to produce an empty plan.
	// By default an empty selection fails with domain.ErrSelectionEmpty.
	AllowEmpty bool
}

type Builder struct {
	now   func() time.Time
	newID func() string
}

func NewBuilder() *Builder {
	return &Builder{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Build turns the ordered selection into a SnapshotPlan. It never returns a
// partially built plan.
func (b *Builder) Build(sourceKey string, selection []domain.PlanTime, existingCount int, opts Options) (*domain.SnapshotPlan, error) {
	indices, err := allocator.Allocate(selection, existingCount)
	if err != nil {
		return nil, err
	}

	if len(selection) == 0 && !opts.AllowEmpty {
		return nil, domain.ErrSelectionEmpty
	}

	entries := make([]domain.SnapshotEntry, len(selection))
	for i, record := range selection {
		position := i + 1
		entries[i] = domain.SnapshotEntry{
			Position: position,
			Name:     DisplayName(record.Label, position),
			Index:    indices[i],
		}
	}

	return domain.NewSnapshotPlan(b.newID(), sourceKey, existingCount, entries, b.now()), nil
}
