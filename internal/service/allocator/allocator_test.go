package allocator

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

func makeSelection(n int) []domain.PlanTime {
	base := time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC)
	selection := make([]domain.PlanTime, n)
	for i := range selection {
		selection[i] = domain.NewPlanTime(
			string(rune('a'+i)),
			"",
			base.Add(time.Duration(i)*time.Hour),
		)
	}
	return selection
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		existingCount int
		want          []int
	}{
		{
			name:          "empty selection returns empty indices",
			count:         0,
			existingCount: 3,
			want:          []int{},
		},
		{
			name:          "zero offset starts at zero",
			count:         3,
			existingCount: 0,
			want:          []int{0, 1, 2},
		},
		{
			name:          "offset shifts the whole run",
			count:         2,
			existingCount: 2,
			want:          []int{2, 3},
		},
		{
			name:          "large offset is not clamped",
			count:         2,
			existingCount: 998,
			want:          []int{998, 999},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(makeSelection(tt.count), tt.existingCount)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Allocate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllocateContiguousForAnyOffset(t *testing.T) {
	for existingCount := 0; existingCount < 50; existingCount += 7 {
		for n := 0; n < 12; n++ {
			indices, err := Allocate(makeSelection(n), existingCount)
			if err != nil {
				t.Fatalf("existingCount=%d n=%d: unexpected error: %v", existingCount, n, err)
			}
			if len(indices) != n {
				t.Fatalf("existingCount=%d n=%d: got %d indices", existingCount, n, len(indices))
			}
			for i, idx := range indices {
				if idx != existingCount+i {
					t.Errorf("existingCount=%d n=%d: indices[%d] = %d, want %d", existingCount, n, i, idx, existingCount+i)
				}
			}
		}
	}
}

func TestAllocateDoesNotReorder(t *testing.T) {
	selection := makeSelection(3)
	// Reverse chronological order is still authoritative.
	slices.Reverse(selection)

	indices, err := Allocate(selection, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(indices, []int{5, 6, 7}) {
		t.Errorf("Allocate() = %v, want [5 6 7]", indices)
	}
	if selection[0].ID != "c" {
		t.Errorf("selection was reordered: first id = %q", selection[0].ID)
	}
}

func TestAllocateNegativeOffset(t *testing.T) {
	indices, err := Allocate(makeSelection(2), -1)
	if !errors.Is(err, domain.ErrInvalidOffset) {
		t.Fatalf("expected ErrInvalidOffset, got %v", err)
	}
	if indices != nil {
		t.Errorf("expected nil indices, got %v", indices)
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name          string
		hasExisting   bool
		existingCount int
		want          int
		wantErr       error
	}{
		{name: "no existing snapshots ignores count", hasExisting: false, existingCount: 4, want: 0},
		{name: "existing snapshots uses count", hasExisting: true, existingCount: 4, want: 4},
		{name: "existing with zero count", hasExisting: true, existingCount: 0, want: 0},
		{name: "negative count is rejected", hasExisting: true, existingCount: -2, wantErr: domain.ErrInvalidOffset},
		{name: "negative count is rejected even when unused", hasExisting: false, existingCount: -2, wantErr: domain.ErrInvalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Offset(tt.hasExisting, tt.existingCount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Offset() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}
