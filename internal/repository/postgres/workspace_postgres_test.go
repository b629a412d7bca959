package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"unitracker/internal/repository"
)

func TestWorkspacePostgres_Read(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewWorkspacePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"version":1}`))
		mock.ExpectQuery("SELECT body FROM workspace_documents").
			WithArgs(DefaultDocumentKey).
			WillReturnRows(rows)

		data, err := repo.Read(ctx)

		assert.NoError(t, err)
		assert.Equal(t, `{"version":1}`, string(data))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT body FROM workspace_documents").
			WithArgs(DefaultDocumentKey).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Read(ctx)

		assert.ErrorIs(t, err, repository.ErrNotExist)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT body FROM workspace_documents").
			WithArgs(DefaultDocumentKey).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Read(ctx)

		assert.EqualError(t, err, "connection reset")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkspacePostgres_Write(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewWorkspacePostgres(db)

	mock.ExpectExec("INSERT INTO workspace_documents").
		WithArgs(DefaultDocumentKey, `{"version":1}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Write(context.Background(), []byte(`{"version":1}`))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkspacePostgres_Backup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewWorkspacePostgres(db)

	mock.ExpectExec("INSERT INTO workspace_documents").
		WithArgs("default.bak", `{"version":"one"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Backup(context.Background(), []byte(`{"version":"one"}`))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkspacePostgres_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("down"))

	assert.Error(t, NewWorkspacePostgres(db).Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
