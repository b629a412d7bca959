package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"unitracker/internal/repository"
)

// WorkspaceFile is a filesystem implementation of repository.WorkspaceRepository.
// The document lives in a single JSON file; writes go to a temp file that is renamed into place.
type WorkspaceFile struct {
	path string
	mu   sync.Mutex
}

// NewWorkspaceFile creates a repository backed by the file at path.
// The parent directory is created on first access.
func NewWorkspaceFile(path string) *WorkspaceFile {
	return &WorkspaceFile{path: path}
}

var _ repository.WorkspaceRepository = (*WorkspaceFile)(nil)

// Path returns the backing file path.
func (r *WorkspaceFile) Path() string { return r.path }

func (r *WorkspaceFile) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

// Read returns the file contents, or repository.ErrNotExist if the file is absent.
func (r *WorkspaceFile) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureDir(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the file atomically: the data is written and synced to a temp file in the same
// directory, then renamed over the old document.
func (r *WorkspaceFile) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureDir(); err != nil {
		return err
	}
	return writeAtomic(r.path, data)
}

// BackupPath is where Backup writes, "<path>.bak".
func (r *WorkspaceFile) BackupPath() string { return r.path + ".bak" }

// Backup writes data to BackupPath.
func (r *WorkspaceFile) Backup(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureDir(); err != nil {
		return err
	}
	if err := writeAtomic(r.BackupPath(), data); err != nil {
		return fmt.Errorf("backup workspace file: %w", err)
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Ping checks that the data directory exists (creating it if needed) and is a directory.
func (r *WorkspaceFile) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.ensureDir(); err != nil {
		return err
	}
	st, err := os.Stat(filepath.Dir(r.path))
	if err != nil {
		return err
	}
	if !st.IsDir() {
		return fmt.Errorf("%s is not a directory", filepath.Dir(r.path))
	}
	return nil
}
