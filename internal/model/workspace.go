package model

// Package model holds the workspace document types.
// These are plain data structures shared by the store, the HTTP layer and the client;
// the JSON tags define the on-disk document format.

// CurrentVersion is the only document version this build writes.
const CurrentVersion = 1

// Workspace is the single document holding all persisted application data.
type Workspace struct {
	Version              int                   `json:"version"`
	Admin                AdminSettings         `json:"admin"`
	Universities         []University          `json:"universities"`
	Programs             []Program             `json:"programs"`
	AdmissionWindows     []AdmissionWindow     `json:"admissionWindows"`
	DocumentTemplates    []DocumentTemplate    `json:"documentTemplates"`
	CollectedDocumentIDs []string              `json:"collectedDocumentIds"`
	Applications         []Application         `json:"applications"`
	ApplicationDocuments []ApplicationDocument `json:"applicationDocuments"`
	Uploads              []UploadedDoc         `json:"uploads"`
	Targets              []Target              `json:"targets"`
	Notes                []Note                `json:"notes"`
}

// University is a tracked institution. Fields holds values for admin-defined custom fields,
// keyed by UniversityFieldDefinition.Key. Keys of deleted definitions are kept.
type University struct {
	ID                         string                `json:"id"`
	Name                       string                `json:"name"`
	City                       string                `json:"city,omitempty"`
	Website                    string                `json:"website,omitempty"`
	DegreeTitle                string                `json:"degreeTitle,omitempty"`
	DurationSemesters          *float64              `json:"durationSemesters,omitempty"`
	TuitionFeePerSemester      *float64              `json:"tuitionFeePerSemester,omitempty"`
	GermanLanguageTestRequired bool                  `json:"germanLanguageTestRequired,omitempty"`
	RequiredDocumentIDs        []string              `json:"requiredDocumentIds"`
	Notes                      string                `json:"notes,omitempty"`
	Fields                     map[string]FieldValue `json:"fields"`
	CreatedAt                  string                `json:"createdAt"`
	UpdatedAt                  string                `json:"updatedAt"`
}

// FieldType is the input type of a custom university field.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldText    FieldType = "text"
	FieldNumber  FieldType = "number"
	FieldDate    FieldType = "date"
	FieldBoolean FieldType = "boolean"
	FieldURL     FieldType = "url"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldString, FieldText, FieldNumber, FieldDate, FieldBoolean, FieldURL:
		return true
	}
	return false
}

// UniversityFieldDefinition describes one admin-defined custom attribute.
type UniversityFieldDefinition struct {
	ID    string    `json:"id"`
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
}

// CalendarMapping names the custom field keys holding admission window start and end dates.
type CalendarMapping struct {
	StartFieldKey *string `json:"startFieldKey"`
	EndFieldKey   *string `json:"endFieldKey"`
}

// AdminSettings is the admin-managed configuration embedded in the workspace.
type AdminSettings struct {
	UniversityFields []UniversityFieldDefinition `json:"universityFields"`
	Calendar         CalendarMapping             `json:"calendar"`
}

// DocumentTemplate is a checklist entry such as "Passport".
type DocumentTemplate struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category,omitempty"`
	RequiredByDefault bool   `json:"requiredByDefault"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// UploadedDoc is the metadata record for a file held by the upload store.
type UploadedDoc struct {
	ID           string `json:"id"`
	TemplateID   string `json:"templateId,omitempty"`
	DisplayName  string `json:"displayName"`
	OriginalName string `json:"originalName"`
	StoredName   string `json:"storedName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
	Notes        string `json:"notes,omitempty"`
}

// Target is a personal goal, optionally with a YYYY-MM-DD date.
type Target struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TargetDate  string `json:"targetDate,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Note is a free-text research note.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
