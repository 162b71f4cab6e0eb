package models

import (
	"fmt"
	"time"

	"github.com/walkiapp/walki/internal/constants"
)

// WalkEvent is a single logged walk within a day. Events are owned by their
// DayRecord and immutable once created.
type WalkEvent struct {
	ID       string  `json:"id"`
	Time     string  `json:"time"` // display clock, e.g. "7:30 AM"
	Steps    int     `json:"steps"`
	Distance float64 `json:"distance,omitempty"` // miles
	Notes    string  `json:"notes,omitempty"`
}

// DayRecord is one calendar day's step record. A calendar holds at most one
// record per date; records are mutated in place as steps are logged and never
// deleted except on full reset.
type DayRecord struct {
	Date       string      `json:"date"` // YYYY-MM-DD format
	Steps      int         `json:"steps"`
	Goal       int         `json:"goal"`
	Completed  bool        `json:"completed"`
	FreezeUsed bool        `json:"freeze_used"`
	Events     []WalkEvent `json:"events,omitempty"`
}

// Qualifies reports whether the day counts toward streak continuity: the goal
// was met or a freeze covered the miss.
func (d DayRecord) Qualifies() bool {
	return d.Completed || d.FreezeUsed
}

// ParseDate returns the record's date as a midnight UTC time.
func (d DayRecord) ParseDate() (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, d.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day record date %q: %w", d.Date, err)
	}
	return t, nil
}

func (d *DayRecord) Validate() error {
	if _, err := d.ParseDate(); err != nil {
		return err
	}
	if d.Steps < 0 {
		return fmt.Errorf("steps cannot be negative")
	}
	if d.Goal <= 0 {
		return fmt.Errorf("goal must be positive")
	}
	for _, ev := range d.Events {
		if ev.Steps <= 0 {
			return fmt.Errorf("walk event %s: steps must be positive", ev.ID)
		}
	}
	return nil
}
