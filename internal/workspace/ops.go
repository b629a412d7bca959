package workspace

import (
	"fmt"
	"strings"
	"time"

	"unitracker/internal/model"
)

// The operations below never modify the slices of the workspace they are given: every changed
// collection is rebuilt, so a client can keep the previous document cached until a save succeeds.

func upsert[T any](list []T, item T, id func(T) string) ([]T, bool) {
	out := make([]T, 0, len(list)+1)
	found := false
	for _, existing := range list {
		if id(existing) == id(item) {
			out = append(out, item)
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, item)
	}
	return out, !found
}

func filter[T any](list []T, keep func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func contains[T any](list []T, match func(T) bool) bool {
	for _, item := range list {
		if match(item) {
			return true
		}
	}
	return false
}

func stamp(id, createdAt *string, now time.Time) string {
	ts := Timestamp(now)
	if *id == "" {
		*id = NewID()
	}
	if *createdAt == "" {
		*createdAt = ts
	}
	return ts
}

// UpsertUniversity inserts u or replaces the university with the same id.
// It reports whether a new record was created.
func UpsertUniversity(ws model.Workspace, u model.University, now time.Time) (model.Workspace, bool, error) {
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" {
		return ws, false, fmt.Errorf("%w: university name is required", ErrValidation)
	}
	u.UpdatedAt = stamp(&u.ID, &u.CreatedAt, now)
	if u.Fields == nil {
		u.Fields = map[string]model.FieldValue{}
	}
	if u.RequiredDocumentIDs == nil {
		u.RequiredDocumentIDs = []string{}
	}

	var created bool
	ws.Universities, created = upsert(ws.Universities, u, func(x model.University) string { return x.ID })
	return ws, created, nil
}

// DeleteUniversity removes a university together with its programs and the admission windows
// of those programs.
func DeleteUniversity(ws model.Workspace, id string) (model.Workspace, error) {
	if !contains(ws.Universities, func(u model.University) bool { return u.ID == id }) {
		return ws, fmt.Errorf("%w: university %q", ErrNotFound, id)
	}

	owned := make(map[string]struct{})
	for _, p := range ws.Programs {
		if p.UniversityID == id {
			owned[p.ID] = struct{}{}
		}
	}

	ws.Universities = filter(ws.Universities, func(u model.University) bool { return u.ID != id })
	ws.Programs = filter(ws.Programs, func(p model.Program) bool { return p.UniversityID != id })
	ws.AdmissionWindows = filter(ws.AdmissionWindows, func(aw model.AdmissionWindow) bool {
		_, gone := owned[aw.ProgramID]
		return !gone
	})
	return ws, nil
}

// UpsertTarget inserts or replaces a target.
func UpsertTarget(ws model.Workspace, t model.Target, now time.Time) (model.Workspace, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return ws, fmt.Errorf("%w: target name is required", ErrValidation)
	}
	t.Description = strings.TrimSpace(t.Description)
	t.TargetDate = strings.TrimSpace(t.TargetDate)
	t.UpdatedAt = stamp(&t.ID, &t.CreatedAt, now)
	ws.Targets, _ = upsert(ws.Targets, t, func(x model.Target) string { return x.ID })
	return ws, nil
}

// DeleteTarget removes a target.
func DeleteTarget(ws model.Workspace, id string) (model.Workspace, error) {
	if !contains(ws.Targets, func(t model.Target) bool { return t.ID == id }) {
		return ws, fmt.Errorf("%w: target %q", ErrNotFound, id)
	}
	ws.Targets = filter(ws.Targets, func(t model.Target) bool { return t.ID != id })
	return ws, nil
}

// UpsertNote inserts or replaces a note.
func UpsertNote(ws model.Workspace, n model.Note, now time.Time) (model.Workspace, error) {
	n.Title = strings.TrimSpace(n.Title)
	if n.Title == "" {
		return ws, fmt.Errorf("%w: note title is required", ErrValidation)
	}
	n.Body = strings.TrimSpace(n.Body)
	n.UpdatedAt = stamp(&n.ID, &n.CreatedAt, now)
	ws.Notes, _ = upsert(ws.Notes, n, func(x model.Note) string { return x.ID })
	return ws, nil
}

// DeleteNote removes a note.
func DeleteNote(ws model.Workspace, id string) (model.Workspace, error) {
	if !contains(ws.Notes, func(n model.Note) bool { return n.ID == id }) {
		return ws, fmt.Errorf("%w: note %q", ErrNotFound, id)
	}
	ws.Notes = filter(ws.Notes, func(n model.Note) bool { return n.ID != id })
	return ws, nil
}

// UpsertTemplate inserts or replaces a document template.
func UpsertTemplate(ws model.Workspace, d model.DocumentTemplate, now time.Time) (model.Workspace, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return ws, fmt.Errorf("%w: document name is required", ErrValidation)
	}
	d.Category = strings.TrimSpace(d.Category)
	d.UpdatedAt = stamp(&d.ID, &d.CreatedAt, now)
	ws.DocumentTemplates, _ = upsert(ws.DocumentTemplates, d, func(x model.DocumentTemplate) string { return x.ID })
	return ws, nil
}

// DeleteTemplate removes a document template and every reference to it from the checklist
// and from universities' required documents. Upload records keep their templateId.
func DeleteTemplate(ws model.Workspace, id string) (model.Workspace, error) {
	if !contains(ws.DocumentTemplates, func(d model.DocumentTemplate) bool { return d.ID == id }) {
		return ws, fmt.Errorf("%w: document template %q", ErrNotFound, id)
	}
	other := func(x string) bool { return x != id }

	ws.DocumentTemplates = filter(ws.DocumentTemplates, func(d model.DocumentTemplate) bool { return d.ID != id })
	ws.CollectedDocumentIDs = filter(ws.CollectedDocumentIDs, other)

	unis := make([]model.University, len(ws.Universities))
	for i, u := range ws.Universities {
		u.RequiredDocumentIDs = filter(u.RequiredDocumentIDs, other)
		unis[i] = u
	}
	ws.Universities = unis
	return ws, nil
}

// SetCollected marks a document template as collected or not.
func SetCollected(ws model.Workspace, templateID string, collected bool) (model.Workspace, error) {
	if !contains(ws.DocumentTemplates, func(d model.DocumentTemplate) bool { return d.ID == templateID }) {
		return ws, fmt.Errorf("%w: document template %q", ErrNotFound, templateID)
	}
	ids := filter(ws.CollectedDocumentIDs, func(x string) bool { return x != templateID })
	if collected {
		ids = append(ids, templateID)
	}
	ws.CollectedDocumentIDs = ids
	return ws, nil
}

// AddField appends a custom field definition. When key is blank it is derived from label.
func AddField(ws model.Workspace, label, key string, t model.FieldType) (model.Workspace, model.UniversityFieldDefinition, error) {
	label = strings.TrimSpace(label)
	key = strings.TrimSpace(key)
	if key == "" {
		key = SlugKey(label)
	}

	var def model.UniversityFieldDefinition
	switch {
	case label == "":
		return ws, def, fmt.Errorf("%w: field label is required", ErrValidation)
	case !ValidKey(key):
		return ws, def, fmt.Errorf("%w: field key %q must be lowercase letters, digits and underscores", ErrValidation, key)
	case !t.Valid():
		return ws, def, fmt.Errorf("%w: unknown field type %q", ErrValidation, t)
	}
	if contains(ws.Admin.UniversityFields, func(d model.UniversityFieldDefinition) bool { return d.Key == key }) {
		return ws, def, fmt.Errorf("%w: field key %q already exists", ErrValidation, key)
	}

	def = model.UniversityFieldDefinition{ID: NewID(), Key: key, Label: label, Type: t}
	fields := make([]model.UniversityFieldDefinition, 0, len(ws.Admin.UniversityFields)+1)
	fields = append(fields, ws.Admin.UniversityFields...)
	ws.Admin.UniversityFields = append(fields, def)
	return ws, def, nil
}

// RemoveField deletes a field definition and clears any calendar mapping pointing at its key.
// University values stored under the key are left in place.
func RemoveField(ws model.Workspace, id string) (model.Workspace, error) {
	var removed *model.UniversityFieldDefinition
	for i := range ws.Admin.UniversityFields {
		if ws.Admin.UniversityFields[i].ID == id {
			removed = &ws.Admin.UniversityFields[i]
			break
		}
	}
	if removed == nil {
		return ws, fmt.Errorf("%w: field %q", ErrNotFound, id)
	}
	key := removed.Key

	ws.Admin.UniversityFields = filter(ws.Admin.UniversityFields, func(d model.UniversityFieldDefinition) bool { return d.ID != id })
	cal := ws.Admin.Calendar
	if cal.StartFieldKey != nil && *cal.StartFieldKey == key {
		cal.StartFieldKey = nil
	}
	if cal.EndFieldKey != nil && *cal.EndFieldKey == key {
		cal.EndFieldKey = nil
	}
	ws.Admin.Calendar = cal
	return ws, nil
}

// SetCalendarMapping points the calendar at the given field keys. A nil key unsets that side.
func SetCalendarMapping(ws model.Workspace, start, end *string) (model.Workspace, error) {
	for _, k := range []*string{start, end} {
		if k == nil {
			continue
		}
		if !contains(ws.Admin.UniversityFields, func(d model.UniversityFieldDefinition) bool { return d.Key == *k }) {
			return ws, fmt.Errorf("%w: no field with key %q", ErrNotFound, *k)
		}
	}
	ws.Admin.Calendar = model.CalendarMapping{StartFieldKey: start, EndFieldKey: end}
	return ws, nil
}
