// Package weekdate provides the calendar arithmetic shared by the brain-dump
// parser, the meal plan, and the grocery list: ISO week anchoring (Monday is
// the start of the week) and strictly-future weekday resolution.
package weekdate

import (
	"fmt"
	"time"
)

// DateFormat is the ISO date layout used for all persisted dates.
const DateFormat = "2006-01-02"

// Monday returns the Monday of the ISO week containing t, at t's clock time
// stripped to midnight in t's location. A Sunday rolls back six days.
func Monday(t time.Time) time.Time {
	t = startOfDay(t)
	diff := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		diff = 6
	}
	return t.AddDate(0, 0, -diff)
}

// Sunday returns the Sunday ending the ISO week containing t.
func Sunday(t time.Time) time.Time {
	return Monday(t).AddDate(0, 0, 6)
}

// NextWeekday returns the next occurrence of target strictly after base.
// If base already falls on target, the result is a full week out.
func NextWeekday(base time.Time, target time.Weekday) time.Time {
	base = startOfDay(base)
	daysUntil := int(target) - int(base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// Format renders t as an ISO date string.
func Format(t time.Time) string {
	return t.Format(DateFormat)
}

// Parse parses an ISO date string.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
