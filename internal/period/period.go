// Package period classifies an admission window relative to the current time.
package period

import (
	"strings"
	"time"

	"unitracker/internal/model"
)

// Status is the bucket a date range falls into.
type Status string

const (
	NoDates     Status = "no_dates"
	OpenNow     Status = "open_now"
	OpeningSoon Status = "opening_soon"
	ClosingSoon Status = "closing_soon"
	Upcoming    Status = "upcoming"
	Past        Status = "past"
)

// Soon is how close a start or end must be to count as "soon". The boundary is inclusive.
const Soon = 14 * 24 * time.Hour

var labels = map[Status]string{
	NoDates:     "No dates",
	OpenNow:     "Open now",
	OpeningSoon: "Opening soon",
	ClosingSoon: "Closing soon",
	Upcoming:    "Upcoming",
	Past:        "Past",
}

// All lists every status in dashboard order.
func All() []Status {
	return []Status{ClosingSoon, OpenNow, OpeningSoon, Upcoming, Past, NoDates}
}

// Label is the human-readable name of s.
func (s Status) Label() string { return labels[s] }

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Classify buckets the window [start, end] relative to now. Either bound may be nil.
func Classify(start, end *time.Time, now time.Time) Status {
	switch {
	case start == nil && end == nil:
		return NoDates
	case start != nil && end != nil:
		if !now.Before(*start) && !now.After(*end) {
			return closing(*end, now)
		}
		if start.After(now) {
			return opening(*start, now)
		}
		return Past
	case start != nil:
		if start.After(now) {
			return opening(*start, now)
		}
		return Past
	default:
		if !now.After(*end) {
			return closing(*end, now)
		}
		return Past
	}
}

func opening(start, now time.Time) Status {
	if start.Sub(now) <= Soon {
		return OpeningSoon
	}
	return Upcoming
}

func closing(end, now time.Time) Status {
	if end.Sub(now) <= Soon {
		return ClosingSoon
	}
	return OpenNow
}

// ParseDate reads a YYYY-MM-DD field value as UTC midnight. Full RFC 3339 timestamps are also
// accepted and reduced to the calendar date they were written with, so a time of day never moves
// a window across the Soon boundary. Anything else, including non-string values, yields nil.
func ParseDate(v model.FieldValue) *time.Time {
	s, ok := v.AsString()
	if !ok {
		return nil
	}
	return ParseDateString(s)
}

// ParseDateString is ParseDate for plain strings.
func ParseDateString(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		t = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	return nil
}

// Window resolves a university's admission window through the calendar mapping.
func Window(u model.University, cal model.CalendarMapping) (start, end *time.Time) {
	if cal.StartFieldKey != nil {
		start = ParseDate(u.Fields[*cal.StartFieldKey])
	}
	if cal.EndFieldKey != nil {
		end = ParseDate(u.Fields[*cal.EndFieldKey])
	}
	return start, end
}

// Of classifies a university's admission window.
func Of(u model.University, cal model.CalendarMapping, now time.Time) Status {
	start, end := Window(u, cal)
	return Classify(start, end, now)
}
