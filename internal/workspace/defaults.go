package workspace

import (
	"time"

	"github.com/google/uuid"

	"unitracker/internal/model"
)

const (
	// DefaultStartFieldKey and DefaultEndFieldKey are the calendar mapping of a fresh workspace.
	DefaultStartFieldKey = "admission_start"
	DefaultEndFieldKey   = "admission_end"
)

// Timestamp formats t the way every createdAt/updatedAt in the document is written.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// NewID returns a fresh random entity id.
func NewID() string {
	return uuid.NewString()
}

// DefaultAdmin returns the field definitions and calendar mapping of a fresh workspace.
func DefaultAdmin() model.AdminSettings {
	start, end := DefaultStartFieldKey, DefaultEndFieldKey
	return model.AdminSettings{
		UniversityFields: []model.UniversityFieldDefinition{
			{ID: NewID(), Key: DefaultStartFieldKey, Label: "Admission start", Type: model.FieldDate},
			{ID: NewID(), Key: DefaultEndFieldKey, Label: "Admission end", Type: model.FieldDate},
			{ID: NewID(), Key: "ielts_overall", Label: "IELTS overall", Type: model.FieldNumber},
			{ID: NewID(), Key: "ielts_min_band", Label: "IELTS min band", Type: model.FieldNumber},
			{ID: NewID(), Key: "vpd_required", Label: "VPD required", Type: model.FieldBoolean},
			{ID: NewID(), Key: "degree_duration_months", Label: "Degree duration (months)", Type: model.FieldNumber},
			{ID: NewID(), Key: "required_documents", Label: "Required documents", Type: model.FieldText},
		},
		Calendar: model.CalendarMapping{StartFieldKey: &start, EndFieldKey: &end},
	}
}

var defaultTemplates = []struct {
	name     string
	category string
	required bool
}{
	{"Passport", "Identity", true},
	{"Transcripts", "Academic", true},
	{"Degree Certificate", "Academic", false},
	{"IELTS / Language Proof", "Language", true},
	{"CV", "Application", true},
	{"Statement of Purpose (SOP)", "Application", true},
	{"Letters of Recommendation (LORs)", "Application", false},
	{"APS Certificate (if applicable)", "Portal", false},
	{"VPD / uni-assist (if required)", "Portal", false},
}

// DefaultTemplates returns the seeded document checklist.
func DefaultTemplates(now time.Time) []model.DocumentTemplate {
	ts := Timestamp(now)
	out := make([]model.DocumentTemplate, 0, len(defaultTemplates))
	for _, d := range defaultTemplates {
		out = append(out, model.DocumentTemplate{
			ID:                NewID(),
			Name:              d.name,
			Category:          d.category,
			RequiredByDefault: d.required,
			CreatedAt:         ts,
			UpdatedAt:         ts,
		})
	}
	return out
}

// Default builds the document written on first run.
func Default(now time.Time) model.Workspace {
	ws := model.Workspace{
		Version:           model.CurrentVersion,
		Admin:             DefaultAdmin(),
		DocumentTemplates: DefaultTemplates(now),
	}
	return Normalize(ws, now)
}
