package progress

import (
	"fmt"
	"strings"
	"time"
)

// Window is the number of most recent entries the windowed statistics
// look at. It counts entries, not days.
type Window int

const (
	WindowWeek        Window = 7
	WindowMonth       Window = 30
	WindowThreeMonths Window = 90
)

var Windows = []Window{WindowWeek, WindowMonth, WindowThreeMonths}

func ParseWindow(value string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "week", "7":
		return WindowWeek, nil
	case "month", "30":
		return WindowMonth, nil
	case "3months", "three_months", "90":
		return WindowThreeMonths, nil
	}
	return 0, fmt.Errorf("unknown window: %q", value)
}

func (w Window) String() string {
	switch w {
	case WindowWeek:
		return "week"
	case WindowMonth:
		return "month"
	case WindowThreeMonths:
		return "3months"
	}
	return fmt.Sprintf("%d", int(w))
}

func firstN(entries []Entry, window Window) []Entry {
	if window < 0 {
		return nil
	}
	if int(window) < len(entries) {
		return entries[:window]
	}
	return entries
}

// WeightTrendPercent is the change of the latest weight relative to the
// previous one, in percent. Entries must be sorted newest first.
// A zero weight on either side means "not recorded" and yields 0.
func WeightTrendPercent(entries []Entry) float64 {
	if len(entries) < 2 {
		return 0
	}
	current, previous := entries[0].WeightKg, entries[1].WeightKg
	if previous == 0 || current == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// AverageRunTime is the mean run time in seconds over the first window
// entries that have one.
func AverageRunTime(entries []Entry, window Window) float64 {
	total, count := 0, 0
	for _, e := range firstN(entries, window) {
		if e.RunTimeSeconds > 0 {
			total += e.RunTimeSeconds
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// BestRunTime is the fastest run over the first window entries, or 0.
func BestRunTime(entries []Entry, window Window) int {
	best := 0
	for _, e := range firstN(entries, window) {
		if e.RunTimeSeconds <= 0 {
			continue
		}
		if best == 0 || e.RunTimeSeconds < best {
			best = e.RunTimeSeconds
		}
	}
	return best
}

func AverageCompletionRate(entries []Entry, window Window) float64 {
	total, count := 0.0, 0
	for _, e := range firstN(entries, window) {
		if e.CompletionRate > 0 {
			total += e.CompletionRate
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// calendarDay numbers the entry's calendar day in its own location.
func calendarDay(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// ConsistencyStreak counts entries, newest first, while each one is at most
// one calendar day older than the previous counted entry.
func ConsistencyStreak(entries []Entry) int {
	if len(entries) == 0 {
		return 0
	}
	streak := 1
	prev := calendarDay(entries[0].EntryDate)
	for _, e := range entries[1:] {
		day := calendarDay(e.EntryDate)
		if prev-day > 1 {
			break
		}
		streak++
		prev = day
	}
	return streak
}

type Summary struct {
	Window                Window  `json:"window"`
	EntriesCount          int     `json:"entriesCount"`
	Latest                *Entry  `json:"latest,omitempty"`
	WeightTrendPercent    float64 `json:"weightTrendPercent"`
	AverageRunTime        float64 `json:"averageRunTime"`
	BestRunTime           int     `json:"bestRunTime"`
	AverageCompletionRate float64 `json:"averageCompletionRate"`
	ConsistencyStreak     int     `json:"consistencyStreak"`
}

// Summarize computes all statistics over entries sorted newest first.
func Summarize(entries []Entry, window Window) Summary {
	summary := Summary{
		Window:                window,
		EntriesCount:          len(entries),
		WeightTrendPercent:    WeightTrendPercent(entries),
		AverageRunTime:        AverageRunTime(entries, window),
		BestRunTime:           BestRunTime(entries, window),
		AverageCompletionRate: AverageCompletionRate(entries, window),
		ConsistencyStreak:     ConsistencyStreak(entries),
	}
	if len(entries) > 0 {
		latest := entries[0]
		summary.Latest = &latest
	}
	return summary
}
