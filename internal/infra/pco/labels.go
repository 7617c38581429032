package pco

import (
	"strings"
	"time"
)

const (
	labelSeparator   = " — "
	unknownDateLabel = "Unknown date"
	untitledPlan     = "Untitled"
	untitledCue      = "Untitled Cue"

	DefaultPlanTimeID    = "default"
	DefaultPlanTimeLabel = "(default)"
)

// PlanLabel renders "2025-03-02 — Sunday Gathering".
func PlanLabel(sortDate, title string) string {
	date := unknownDateLabel
	if len(sortDate) >= 10 {
		date = sortDate[:10]
	} else if sortDate != "" {
		date = sortDate
	}
	if strings.TrimSpace(title) == "" {
		title = untitledPlan
	}
	return date + labelSeparator + title
}

// PlanTimeLabel keeps the plan time name and appends the local start time:
// "Second Service — 11:00 AM", "9:00 AM", or just the name.
func PlanTimeLabel(name string, startsAt time.Time, loc *time.Location) string {
	name = strings.TrimSpace(name)

	clock := ""
	if !startsAt.IsZero() {
		clock = startsAt.In(loc).Format("3:04 PM")
	}

	switch {
	case name != "" && clock != "":
		return name + labelSeparator + clock
	case clock != "":
		return clock
	default:
		return name
	}
}

// CueLabel uses the item title with double quotes swapped for single ones.
func CueLabel(title string) string {
	if title == "" {
		title = untitledCue
	}
	return strings.ReplaceAll(title, `"`, "'")
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
