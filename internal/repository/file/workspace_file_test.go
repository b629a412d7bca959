package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitracker/internal/repository"
)

func TestWorkspaceFile_ReadMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	repo := NewWorkspaceFile(filepath.Join(dir, "workspace.json"))

	_, err := repo.Read(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotExist)

	st, err := os.Stat(dir)
	require.NoError(t, err, "data directory is created on first access")
	assert.True(t, st.IsDir())
}

func TestWorkspaceFile_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	repo := NewWorkspaceFile(path)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, []byte(`{"version":1}`)))
	require.NoError(t, repo.Write(ctx, []byte(`{"version":1,"notes":[]}`)))

	data, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"version":1,"notes":[]}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWorkspaceFile_Backup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	repo := NewWorkspaceFile(path)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, []byte(`{"version":1}`)))
	require.NoError(t, repo.Backup(ctx, []byte(`{broken`)))
	require.NoError(t, repo.Backup(ctx, []byte(`{still broken`)))

	assert.Equal(t, path+".bak", repo.BackupPath())
	bak, err := os.ReadFile(repo.BackupPath())
	require.NoError(t, err)
	assert.Equal(t, `{still broken`, string(bak))

	data, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(data), "backup leaves the document alone")
}

func TestWorkspaceFile_CanceledContext(t *testing.T) {
	repo := NewWorkspaceFile(filepath.Join(t.TempDir(), "workspace.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Write(ctx, []byte(`{}`)), context.Canceled)
	_, err := repo.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkspaceFile_Ping(t *testing.T) {
	repo := NewWorkspaceFile(filepath.Join(t.TempDir(), "data", "workspace.json"))
	assert.NoError(t, repo.Ping(context.Background()))
}
