package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// diskStorage keeps objects as plain files inside a single directory.
type diskStorage struct {
	dir string
}

// NewDisk creates a Storage rooted at dir, creating the directory if needed.
func NewDisk(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("uploads directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &diskStorage{dir: dir}, nil
}

func (d *diskStorage) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(d.dir, key), nil
}

// Put streams r into {dir}/{key}. A partially written file is removed on failure.
func (d *diskStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	p, err := d.path(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create object: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(p)
		return ObjectInfo{}, fmt.Errorf("write object: %w", err)
	}

	st, err := os.Stat(p)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("stat object: %w", err)
	}
	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: st.ModTime(),
		Metadata:     opt.Metadata,
	}, nil
}

// Get opens {dir}/{key} for reading.
func (d *diskStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	p, err := d.path(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}

	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("open object: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, fmt.Errorf("stat object: %w", err)
	}
	return f, ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		ContentType:  mime.TypeByExtension(filepath.Ext(key)),
		LastModified: st.ModTime(),
	}, nil
}

// Delete removes {dir}/{key}; a missing file is not an error.
func (d *diskStorage) Delete(ctx context.Context, key string) error {
	p, err := d.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}
