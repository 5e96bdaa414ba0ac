package progress

import (
	"errors"
	"time"
)

var ErrEntryNotFound = errors.New("progress entry not found")

// Photos holds the ids of the check-in photos in the photo store.
type Photos struct {
	Front string `json:"front,omitempty"`
	Back  string `json:"back,omitempty"`
	Side  string `json:"side,omitempty"`
}

func (p Photos) IDs() []string {
	var ids []string
	for _, id := range []string{p.Front, p.Back, p.Side} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Entry is a single check-in. Weight is always stored in kilograms;
// zero values mean "not provided".
type Entry struct {
	ID             int       `json:"id"`
	EntryDate      time.Time `json:"entryDate"`
	WeightKg       float64   `json:"weightKg"`
	RunTimeSeconds int       `json:"runTimeSeconds"`
	CompletionRate float64   `json:"completionRate"`
	Notes          string    `json:"notes"`
	Photos         Photos    `json:"photos"`
}

// ListParams selects entries by an optional entry date range [From, To).
// A zero Limit means no limit.
type ListParams struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
