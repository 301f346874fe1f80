package domain

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Recurrence describes how a task repeats after its anchor date.
type Recurrence string

// Possible recurrence values
const (
	RecurrenceSingle  Recurrence = "single"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// occurrenceRule reports whether a task anchored at anchor is due on date.
// Rules are only consulted for dates on or after the anchor.
type occurrenceRule func(anchor, date civil.Date) bool

var occurrenceRules = map[Recurrence]occurrenceRule{
	RecurrenceSingle: func(anchor, date civil.Date) bool {
		return date == anchor
	},
	RecurrenceDaily: func(anchor, date civil.Date) bool {
		return true
	},
	RecurrenceWeekly: func(anchor, date civil.Date) bool {
		return weekday(date) == weekday(anchor)
	},
	// A month without the anchor's day never matches, e.g. the 31st in April.
	RecurrenceMonthly: func(anchor, date civil.Date) bool {
		return date.Day == anchor.Day
	},
	// Feb 29 anchors only match in leap years.
	RecurrenceYearly: func(anchor, date civil.Date) bool {
		return date.Month == anchor.Month && date.Day == anchor.Day
	},
}

// Recurrences returns every recurrence kind in menu order. The index of a
// value in the returned slice is its ordinal.
func Recurrences() []Recurrence {
	return []Recurrence{
		RecurrenceSingle,
		RecurrenceDaily,
		RecurrenceWeekly,
		RecurrenceMonthly,
		RecurrenceYearly,
	}
}

// Valid reports whether r is one of the known recurrence kinds.
func (r Recurrence) Valid() bool {
	_, ok := occurrenceRules[r]
	return ok
}

// ParseRecurrence converts a case-insensitive name into a Recurrence.
func ParseRecurrence(s string) (Recurrence, error) {
	r := Recurrence(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRecurrence
	}
	return r, nil
}

// RecurrenceByOrdinal returns the recurrence at position i of Recurrences.
func RecurrenceByOrdinal(i int) (Recurrence, error) {
	kinds := Recurrences()
	if i < 0 || i >= len(kinds) {
		return "", ErrInvalidRecurrence
	}
	return kinds[i], nil
}

// occursOn applies the rule for r. Dates before the anchor never match and
// an unknown recurrence matches nothing.
func (r Recurrence) occursOn(anchor, date civil.Date) bool {
	if date.Before(anchor) {
		return false
	}
	rule, ok := occurrenceRules[r]
	if !ok {
		return false
	}
	return rule(anchor, date)
}

func weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}
