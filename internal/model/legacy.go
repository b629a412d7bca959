package model

// The types below belong to the earlier per-program tracking model. They are still read and
// written so that older workspace files keep their data, and so that deleting a university can
// cascade to its programs and admission windows.

// Program is a degree programme offered by a university.
type Program struct {
	ID             string   `json:"id"`
	UniversityID   string   `json:"universityId"`
	Name           string   `json:"name"`
	DegreeLevel    string   `json:"degreeLevel,omitempty"`
	DurationMonths *float64 `json:"durationMonths,omitempty"`
	Language       string   `json:"language,omitempty"`
	VPDRequired    *bool    `json:"vpdRequired,omitempty"`
	IELTSOverall   *float64 `json:"ieltsOverall,omitempty"`
	IELTSMinBand   *float64 `json:"ieltsMinBand,omitempty"`
	DocumentsNotes string   `json:"documentsNotes,omitempty"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// AdmissionWindow is a dated intake for a program.
type AdmissionWindow struct {
	ID                  string `json:"id"`
	ProgramID           string `json:"programId"`
	IntakeTerm          string `json:"intakeTerm,omitempty"`
	AdmissionStart      string `json:"admissionStart,omitempty"`
	AdmissionEnd        string `json:"admissionEnd,omitempty"`
	ApplicationDeadline string `json:"applicationDeadline,omitempty"`
	Notes               string `json:"notes,omitempty"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// Application tracks the status of applying to a program.
type Application struct {
	ID           string `json:"id"`
	ProgramID    string `json:"programId"`
	Status       string `json:"status"`
	Priority     int    `json:"priority"`
	TargetIntake string `json:"targetIntake,omitempty"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ApplicationDocument links a document template to an application.
type ApplicationDocument struct {
	ID            string `json:"id"`
	ApplicationID string `json:"applicationId"`
	TemplateID    string `json:"templateId"`
	Status        string `json:"status"`
	DueDate       string `json:"dueDate,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}
