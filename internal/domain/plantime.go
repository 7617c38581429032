package domain

import "time"

// PlanTime is a named, timestamped slot fetched from the planning service.
type PlanTime struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	StartsAt time.Time `json:"starts_at"`
}

func NewPlanTime(id, label string, startsAt time.Time) PlanTime {
	return PlanTime{
		ID:       id,
		Label:    label,
		StartsAt: startsAt,
	}
}

func (p PlanTime) HasStart() bool {
	return !p.StartsAt.IsZero()
}
