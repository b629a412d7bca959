package views

import (
	"slices"
	"time"

	"unitracker/internal/model"
	"unitracker/internal/period"
)

// EventKind tells what a calendar event marks.
type EventKind string

const (
	EventStart  EventKind = "start"
	EventEnd    EventKind = "end"
	EventTarget EventKind = "target"
)

// Event is a dated calendar entry. Date is YYYY-MM-DD.
type Event struct {
	ID           string    `json:"id"`
	Kind         EventKind `json:"kind"`
	Title        string    `json:"title"`
	Date         string    `json:"date"`
	UniversityID string    `json:"universityId,omitempty"`
	TargetID     string    `json:"targetId,omitempty"`

	at time.Time
}

// CalendarEvents lists admission start and end events from the calendar mapping plus target
// dates, sorted by date.
func CalendarEvents(ws model.Workspace) []Event {
	cal := ws.Admin.Calendar
	var out []Event
	for _, u := range ws.Universities {
		start, end := period.Window(u, cal)
		if start != nil {
			out = append(out, Event{
				ID:           u.ID + ":start",
				Kind:         EventStart,
				Title:        u.Name + " (start)",
				UniversityID: u.ID,
				at:           *start,
			})
		}
		if end != nil {
			out = append(out, Event{
				ID:           u.ID + ":end",
				Kind:         EventEnd,
				Title:        u.Name + " (end)",
				UniversityID: u.ID,
				at:           *end,
			})
		}
	}
	for _, t := range ws.Targets {
		d := period.ParseDateString(t.TargetDate)
		if d == nil {
			continue
		}
		out = append(out, Event{
			ID:       t.ID + ":target",
			Kind:     EventTarget,
			Title:    t.Name,
			TargetID: t.ID,
			at:       *d,
		})
	}

	slices.SortStableFunc(out, func(a, b Event) int { return a.at.Compare(b.at) })
	for i := range out {
		out[i].Date = out[i].at.Format(time.DateOnly)
	}
	if out == nil {
		out = []Event{}
	}
	return out
}

// Day is one cell of the month grid.
type Day struct {
	Date    string  `json:"date"`
	InMonth bool    `json:"inMonth"`
	IsToday bool    `json:"isToday"`
	Events  []Event `json:"events"`
}

// Month is a calendar page: whole Monday-first weeks covering the month.
type Month struct {
	Month string  `json:"month"`
	Weeks [][]Day `json:"weeks"`
}

// ParseMonth reads "YYYY-MM". An empty string selects the month of now.
func ParseMonth(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01", s)
}

// MonthGrid lays out the events of ws over the month containing cursor. Dates are UTC.
func MonthGrid(ws model.Workspace, cursor, now time.Time) Month {
	cursor = cursor.UTC()
	first := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	gridStart := first.AddDate(0, 0, -mondayOffset(first))
	gridEnd := last.AddDate(0, 0, 6-mondayOffset(last))
	today := now.UTC().Format(time.DateOnly)

	byDate := make(map[string][]Event)
	for _, e := range CalendarEvents(ws) {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	m := Month{Month: first.Format("2006-01")}
	var week []Day
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		key := d.Format(time.DateOnly)
		events := byDate[key]
		if events == nil {
			events = []Event{}
		}
		week = append(week, Day{
			Date:    key,
			InMonth: d.Month() == first.Month(),
			IsToday: key == today,
			Events:  events,
		})
		if len(week) == 7 {
			m.Weeks = append(m.Weeks, week)
			week = nil
		}
	}
	return m
}

// mondayOffset is the number of days since the Monday starting t's week.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
