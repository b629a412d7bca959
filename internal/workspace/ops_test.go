package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitracker/internal/model"
)

func fixture() model.Workspace {
	ws := Default(testNow)
	ws.Universities = []model.University{
		{ID: "u1", Name: "TU Munich", Fields: map[string]model.FieldValue{}, RequiredDocumentIDs: []string{ws.DocumentTemplates[0].ID}},
		{ID: "u2", Name: "RWTH Aachen", Fields: map[string]model.FieldValue{}, RequiredDocumentIDs: []string{}},
	}
	ws.Programs = []model.Program{
		{ID: "p1", UniversityID: "u1", Name: "MSc Informatics"},
		{ID: "p2", UniversityID: "u1", Name: "MSc Robotics"},
		{ID: "p3", UniversityID: "u2", Name: "MSc Data Science"},
	}
	ws.AdmissionWindows = []model.AdmissionWindow{
		{ID: "w1", ProgramID: "p1"},
		{ID: "w2", ProgramID: "p2"},
		{ID: "w3", ProgramID: "p3"},
		{ID: "w4", ProgramID: "orphan"},
	}
	return ws
}

func TestDeleteUniversity_Cascades(t *testing.T) {
	ws := fixture()

	next, err := DeleteUniversity(ws, "u1")
	require.NoError(t, err)

	require.Len(t, next.Universities, 1)
	assert.Equal(t, "u2", next.Universities[0].ID)
	require.Len(t, next.Programs, 1)
	assert.Equal(t, "p3", next.Programs[0].ID)

	var windows []string
	for _, aw := range next.AdmissionWindows {
		windows = append(windows, aw.ID)
	}
	assert.Equal(t, []string{"w3", "w4"}, windows)

	assert.Len(t, ws.Universities, 2, "input must not change")
	assert.Len(t, ws.Programs, 3, "input must not change")
}

func TestDeleteUniversity_NotFound(t *testing.T) {
	_, err := DeleteUniversity(fixture(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertUniversity(t *testing.T) {
	ws := fixture()

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		next, created, err := UpsertUniversity(ws, model.University{Name: "  KIT "}, testNow)
		require.NoError(t, err)
		assert.True(t, created)
		require.Len(t, next.Universities, 3)
		u := next.Universities[2]
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "KIT", u.Name)
		assert.Equal(t, Timestamp(testNow), u.CreatedAt)
		assert.NotNil(t, u.Fields)
	})

	t.Run("update replaces in place", func(t *testing.T) {
		later := testNow.Add(time.Hour)
		u := ws.Universities[1]
		u.City = "Aachen"
		u.CreatedAt = "2025-01-01T00:00:00Z"
		next, created, err := UpsertUniversity(ws, u, later)
		require.NoError(t, err)
		assert.False(t, created)
		require.Len(t, next.Universities, 2)
		assert.Equal(t, "Aachen", next.Universities[1].City)
		assert.Equal(t, "2025-01-01T00:00:00Z", next.Universities[1].CreatedAt)
		assert.Equal(t, Timestamp(later), next.Universities[1].UpdatedAt)
		assert.Empty(t, ws.Universities[1].City)
	})

	t.Run("blank name", func(t *testing.T) {
		_, _, err := UpsertUniversity(ws, model.University{Name: " "}, testNow)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestTargetsAndNotes(t *testing.T) {
	ws := fixture()

	ws, err := UpsertTarget(ws, model.Target{ID: "t1", Name: "IELTS 7.0", TargetDate: "2026-04-01"}, testNow)
	require.NoError(t, err)
	ws, err = UpsertNote(ws, model.Note{ID: "n1", Title: "APS", Body: " book appointment "}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "book appointment", ws.Notes[0].Body)

	_, err = UpsertTarget(ws, model.Target{Name: ""}, testNow)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = UpsertNote(ws, model.Note{Title: ""}, testNow)
	assert.ErrorIs(t, err, ErrValidation)

	ws, err = DeleteTarget(ws, "t1")
	require.NoError(t, err)
	assert.Empty(t, ws.Targets)
	ws, err = DeleteNote(ws, "n1")
	require.NoError(t, err)
	assert.Empty(t, ws.Notes)

	_, err = DeleteNote(ws, "n1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplatesAndChecklist(t *testing.T) {
	ws := fixture()
	passport := ws.DocumentTemplates[0].ID

	ws, err := SetCollected(ws, passport, true)
	require.NoError(t, err)
	ws, err = SetCollected(ws, passport, true)
	require.NoError(t, err)
	assert.Equal(t, []string{passport}, ws.CollectedDocumentIDs)

	_, err = SetCollected(ws, "nope", true)
	assert.ErrorIs(t, err, ErrNotFound)

	next, err := DeleteTemplate(ws, passport)
	require.NoError(t, err)
	assert.Len(t, next.DocumentTemplates, 8)
	assert.Empty(t, next.CollectedDocumentIDs)
	assert.Empty(t, next.Universities[0].RequiredDocumentIDs)
	assert.Equal(t, []string{passport}, ws.Universities[0].RequiredDocumentIDs)

	ws, err = UpsertTemplate(ws, model.DocumentTemplate{Name: "Motivation letter", Category: "Application"}, testNow)
	require.NoError(t, err)
	assert.Len(t, ws.DocumentTemplates, 10)
}

func TestAddAndRemoveField(t *testing.T) {
	ws := fixture()

	ws, def, err := AddField(ws, "Tuition portal", "", model.FieldURL)
	require.NoError(t, err)
	assert.Equal(t, "tuition_portal", def.Key)

	_, _, err = AddField(ws, "Tuition portal", "", model.FieldURL)
	assert.ErrorIs(t, err, ErrValidation, "duplicate key")
	_, _, err = AddField(ws, "Bad", "Bad Key", model.FieldString)
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = AddField(ws, "Kind", "", model.FieldType("select"))
	assert.ErrorIs(t, err, ErrValidation)

	ws.Universities[0].Fields = map[string]model.FieldValue{"admission_start": model.StringValue("2026-05-01")}
	var startID string
	for _, f := range ws.Admin.UniversityFields {
		if f.Key == "admission_start" {
			startID = f.ID
		}
	}

	ws, err = RemoveField(ws, startID)
	require.NoError(t, err)
	assert.Nil(t, ws.Admin.Calendar.StartFieldKey)
	require.NotNil(t, ws.Admin.Calendar.EndFieldKey)
	assert.Equal(t, "admission_end", *ws.Admin.Calendar.EndFieldKey)
	assert.False(t, ws.Universities[0].Fields["admission_start"].IsNull(), "data survives field removal")

	_, err = RemoveField(ws, startID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetCalendarMapping(t *testing.T) {
	ws := fixture()
	end := "admission_end"
	unknown := "nope"

	next, err := SetCalendarMapping(ws, nil, &end)
	require.NoError(t, err)
	assert.Nil(t, next.Admin.Calendar.StartFieldKey)
	assert.Equal(t, "admission_end", *next.Admin.Calendar.EndFieldKey)

	_, err = SetCalendarMapping(ws, &unknown, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidate(t *testing.T) {
	ws := fixture()
	assert.NoError(t, Validate(ws))

	bad := fixture()
	bad.Universities[0].Name = "  "
	assert.ErrorIs(t, Validate(bad), ErrValidation)

	dup := fixture()
	dup.Admin.UniversityFields = append(dup.Admin.UniversityFields, dup.Admin.UniversityFields[0])
	assert.ErrorIs(t, Validate(dup), ErrValidation)
}
