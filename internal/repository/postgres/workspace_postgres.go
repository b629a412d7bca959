package postgres

import (
	"context"
	"database/sql"
	"errors"

	"unitracker/internal/repository"
)

// DefaultDocumentKey is the row id the single workspace document is stored under.
const DefaultDocumentKey = "default"

// BackupSuffix is appended to the document key for the backup row.
const BackupSuffix = ".bak"

// WorkspacePostgres is a PostgreSQL implementation of repository.WorkspaceRepository.
// The whole document is one JSONB row in workspace_documents; a write is a single upsert.
type WorkspacePostgres struct {
	db  *sql.DB
	key string
}

// NewWorkspacePostgres creates a new WorkspacePostgres repository.
func NewWorkspacePostgres(db *sql.DB) *WorkspacePostgres {
	return &WorkspacePostgres{db: db, key: DefaultDocumentKey}
}

var _ repository.WorkspaceRepository = (*WorkspacePostgres)(nil)

// Read fetches the stored document body.
func (r *WorkspacePostgres) Read(ctx context.Context) ([]byte, error) {
	const q = `
		SELECT body
		FROM workspace_documents
		WHERE id = $1
	`
	var body []byte
	if err := r.db.QueryRowContext(ctx, q, r.key).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotExist
		}
		return nil, err
	}
	return body, nil
}

const upsertQuery = `
		INSERT INTO workspace_documents (id, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`

// Write inserts or replaces the document row.
func (r *WorkspacePostgres) Write(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx, upsertQuery, r.key, string(data))
	return err
}

// Backup stores data in the row "<key>.bak".
func (r *WorkspacePostgres) Backup(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx, upsertQuery, r.key+BackupSuffix, string(data))
	return err
}

// Ping checks database connectivity.
func (r *WorkspacePostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
