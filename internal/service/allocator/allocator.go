package allocator

import (
	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

// Allocate maps the selection, in the order given, onto a contiguous run of
// console indices starting at existingCount.
//
// The console's own index range is not enforced here. Callers that need a
// bound must check it themselves; clamping would reorder the show.
func Allocate(selection []domain.PlanTime, existingCount int) ([]int, error) {
	if existingCount < 0 {
		return nil, domain.ErrInvalidOffset
	}

	indices := make([]int, len(selection))
	for i := range selection {
		indices[i] = existingCount + i
	}

	return indices, nil
}

// Offset returns the existing count to allocate from. The count only applies
// when the console already holds snapshots for this show.
func Offset(hasExisting bool, existingCount int) (int, error) {
	if existingCount < 0 {
		return 0, domain.ErrInvalidOffset
	}
	if !hasExisting {
		return 0, nil
	}
	return existingCount, nil
}
