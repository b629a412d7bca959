// Package views derives read-only projections of the workspace: dashboard buckets, calendar
// events and the filtered university table.
package views

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"unitracker/internal/model"
	"unitracker/internal/period"
)

// UniversityRow is a university with its resolved admission window and status.
type UniversityRow struct {
	University  model.University `json:"university"`
	Status      period.Status    `json:"status"`
	StatusLabel string           `json:"statusLabel"`
	Start       string           `json:"start,omitempty"`
	End         string           `json:"end,omitempty"`
}

// UniversityFilter narrows the university table. Zero values match everything.
type UniversityFilter struct {
	Status period.Status
	Query  string
}

func newRow(u model.University, cal model.CalendarMapping, now time.Time) UniversityRow {
	start, end := period.Window(u, cal)
	st := period.Classify(start, end, now)
	return UniversityRow{
		University:  u,
		Status:      st,
		StatusLabel: st.Label(),
		Start:       dateString(start),
		End:         dateString(end),
	}
}

func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

// Rows classifies every university, sorted by name.
func Rows(ws model.Workspace, now time.Time) []UniversityRow {
	rows := make([]UniversityRow, 0, len(ws.Universities))
	for _, u := range ws.Universities {
		rows = append(rows, newRow(u, ws.Admin.Calendar, now))
	}
	sortByName(rows)
	return rows
}

// FilterUniversities returns the name-sorted rows matching f. Query matches name, city and
// degree title, case-insensitively.
func FilterUniversities(ws model.Workspace, f UniversityFilter, now time.Time) []UniversityRow {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]UniversityRow, 0, len(ws.Universities))
	for _, row := range Rows(ws, now) {
		if f.Status != "" && row.Status != f.Status {
			continue
		}
		if q != "" && !matches(row.University, q) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func matches(u model.University, q string) bool {
	for _, s := range []string{u.Name, u.City, u.DegreeTitle} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// sortByName orders rows by university name using German collation, so "Universität" sorts
// next to "Universitat" rather than after "Z".
func sortByName(rows []UniversityRow) {
	col := collate.New(language.German, collate.IgnoreCase)
	slices.SortStableFunc(rows, func(a, b UniversityRow) int {
		if c := col.CompareString(a.University.Name, b.University.Name); c != 0 {
			return c
		}
		return strings.Compare(a.University.ID, b.University.ID)
	})
}

// Keys of custom fields that the university table never shows as columns. Documents are tracked
// through requiredDocumentIds instead.
var hiddenFieldKeys = map[string]struct{}{
	"required_documents":     {},
	"degree_duration_months": {},
}

// VisibleFields lists the custom fields shown as table columns, in definition order.
func VisibleFields(ws model.Workspace) []model.UniversityFieldDefinition {
	out := make([]model.UniversityFieldDefinition, 0, len(ws.Admin.UniversityFields))
	for _, d := range ws.Admin.UniversityFields {
		if _, hidden := hiddenFieldKeys[d.Key]; hidden {
			continue
		}
		if strings.Contains(strings.ToLower(d.Key), "ielts") {
			continue
		}
		out = append(out, d)
	}
	return out
}
