package views

import (
	"slices"
	"time"

	"unitracker/internal/model"
	"unitracker/internal/period"
)

const (
	dashboardTargets   = 5
	dashboardTemplates = 5
)

// StatusBucket groups universities sharing a period status.
type StatusBucket struct {
	Status       period.Status   `json:"status"`
	Label        string          `json:"label"`
	Count        int             `json:"count"`
	Universities []UniversityRow `json:"universities"`
}

// Progress counts collected checklist templates.
type Progress struct {
	Collected int `json:"collected"`
	Total     int `json:"total"`
}

// UploadSummary totals the stored uploads.
type UploadSummary struct {
	Count      int   `json:"count"`
	TotalBytes int64 `json:"totalBytes"`
}

// Dashboard is the landing page projection.
type Dashboard struct {
	Buckets         []StatusBucket           `json:"buckets"`
	UpcomingTargets []model.Target           `json:"upcomingTargets"`
	Templates       []model.DocumentTemplate `json:"templates"`
	MoreTemplates   int                      `json:"moreTemplates"`
	Checklist       Progress                 `json:"checklist"`
	Uploads         UploadSummary            `json:"uploads"`
}

// BuildDashboard computes the dashboard for ws at now. Buckets follow period.All order and are
// present even when empty.
func BuildDashboard(ws model.Workspace, now time.Time) Dashboard {
	byStatus := make(map[period.Status][]UniversityRow)
	for _, row := range Rows(ws, now) {
		byStatus[row.Status] = append(byStatus[row.Status], row)
	}

	d := Dashboard{
		UpcomingTargets: upcomingTargets(ws.Targets),
		Checklist:       checklist(ws),
	}
	for _, st := range period.All() {
		rows := byStatus[st]
		if rows == nil {
			rows = []UniversityRow{}
		}
		d.Buckets = append(d.Buckets, StatusBucket{Status: st, Label: st.Label(), Count: len(rows), Universities: rows})
	}

	n := min(len(ws.DocumentTemplates), dashboardTemplates)
	d.Templates = append([]model.DocumentTemplate{}, ws.DocumentTemplates[:n]...)
	d.MoreTemplates = len(ws.DocumentTemplates) - n

	d.Uploads.Count = len(ws.Uploads)
	for _, u := range ws.Uploads {
		d.Uploads.TotalBytes += u.Size
	}
	return d
}

type datedTarget struct {
	t  model.Target
	at time.Time
}

// upcomingTargets returns the first dated targets in ascending date order.
func upcomingTargets(targets []model.Target) []model.Target {
	dated := make([]datedTarget, 0, len(targets))
	for _, t := range targets {
		if d := period.ParseDateString(t.TargetDate); d != nil {
			dated = append(dated, datedTarget{t: t, at: *d})
		}
	}
	slices.SortStableFunc(dated, func(a, b datedTarget) int { return a.at.Compare(b.at) })

	out := make([]model.Target, 0, dashboardTargets)
	for i := 0; i < len(dated) && i < dashboardTargets; i++ {
		out = append(out, dated[i].t)
	}
	return out
}

// checklist counts collected ids that still name an existing template.
func checklist(ws model.Workspace) Progress {
	known := make(map[string]struct{}, len(ws.DocumentTemplates))
	for _, t := range ws.DocumentTemplates {
		known[t.ID] = struct{}{}
	}
	p := Progress{Total: len(ws.DocumentTemplates)}
	seen := make(map[string]struct{})
	for _, id := range ws.CollectedDocumentIDs {
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		p.Collected++
	}
	return p
}
