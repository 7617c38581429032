package domain

import (
	"time"
)

// SnapshotEntry is one console preset to create: the slot at Index named Name.
type SnapshotEntry struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Index    int    `json:"index"`
}

// SnapshotPlan is the previewable, immutable result of a build.
// Entries are only reachable through copies so a built plan cannot be
// altered after preview.
type SnapshotPlan struct {
	id            string
	sourceKey     string
	existingCount int
	entries       []SnapshotEntry
	builtAt       time.Time
}

func NewSnapshotPlan(id, sourceKey string, existingCount int, entries []SnapshotEntry, builtAt time.Time) *SnapshotPlan {
	copied := make([]SnapshotEntry, len(entries))
	copy(copied, entries)

	return &SnapshotPlan{
		id:            id,
		sourceKey:     sourceKey,
		existingCount: existingCount,
		entries:       copied,
		builtAt:       builtAt.UTC(),
	}
}

func (p *SnapshotPlan) ID() string {
	return p.id
}

func (p *SnapshotPlan) SourceKey() string {
	return p.sourceKey
}

func (p *SnapshotPlan) ExistingCount() int {
	return p.existingCount
}

func (p *SnapshotPlan) BuiltAt() time.Time {
	return p.builtAt
}

func (p *SnapshotPlan) Len() int {
	return len(p.entries)
}

func (p *SnapshotPlan) IsEmpty() bool {
	return len(p.entries) == 0
}

// Entries returns a copy of the entries in position order.
func (p *SnapshotPlan) Entries() []SnapshotEntry {
	out := make([]SnapshotEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// FirstIndex returns the console index of the first entry, or the offset for an empty plan.
func (p *SnapshotPlan) FirstIndex() int {
	if len(p.entries) == 0 {
		return p.existingCount
	}
	return p.entries[0].Index
}
