package workspace

import (
	"time"

	"unitracker/internal/model"
)

// Normalize returns ws with every collection present and every record carrying the fields the
// current schema expects, whichever revision produced the stored file. It never removes data.
// Applying it twice gives the same result as applying it once.
func Normalize(ws model.Workspace, now time.Time) model.Workspace {
	ts := Timestamp(now)

	ws.Version = model.CurrentVersion
	if ws.Admin.UniversityFields == nil {
		if ws.Admin.Calendar.StartFieldKey == nil && ws.Admin.Calendar.EndFieldKey == nil {
			ws.Admin = DefaultAdmin()
		} else {
			ws.Admin.UniversityFields = []model.UniversityFieldDefinition{}
		}
	}

	ws.Universities = cloneOrEmpty(ws.Universities)
	for i := range ws.Universities {
		u := &ws.Universities[i]
		if u.Fields == nil {
			u.Fields = map[string]model.FieldValue{}
		}
		u.RequiredDocumentIDs = orEmpty(u.RequiredDocumentIDs)
		if u.CreatedAt == "" {
			u.CreatedAt = ts
		}
		if u.UpdatedAt == "" {
			u.UpdatedAt = ts
		}
	}

	ws.Programs = orEmpty(ws.Programs)
	ws.AdmissionWindows = orEmpty(ws.AdmissionWindows)
	ws.DocumentTemplates = orEmpty(ws.DocumentTemplates)
	ws.CollectedDocumentIDs = orEmpty(ws.CollectedDocumentIDs)
	ws.Applications = orEmpty(ws.Applications)
	ws.ApplicationDocuments = orEmpty(ws.ApplicationDocuments)

	ws.Uploads = cloneOrEmpty(ws.Uploads)
	for i := range ws.Uploads {
		d := &ws.Uploads[i]
		if d.DisplayName == "" {
			d.DisplayName = d.OriginalName
			if d.DisplayName == "" {
				d.DisplayName = "Untitled"
			}
		}
		if d.CreatedAt == "" {
			d.CreatedAt = ts
		}
		if d.UpdatedAt == "" {
			d.UpdatedAt = d.CreatedAt
		}
	}

	ws.Targets = orEmpty(ws.Targets)
	ws.Notes = orEmpty(ws.Notes)
	return ws
}

// cloneOrEmpty copies s so records can be patched without touching the caller's slice.
func cloneOrEmpty[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
