// Package storage persists uploaded files as opaque objects keyed by their stored name.
// Pairing objects with their metadata records is the caller's job.
package storage

import (
	"context"
	"errors"
	"io"
	"regexp"
	"time"
)

// ErrObjectNotFound is returned by Get when no object exists under the key.
var ErrObjectNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the upload store. Implementations are safe for concurrent use.
type Storage interface {
	// Put writes an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing object succeeds.
	Delete(ctx context.Context, key string) error
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_.\-()]`)

// SanitizeName replaces every character outside [A-Za-z0-9_.-()] with an underscore.
func SanitizeName(original string) string {
	if original == "" {
		return "file"
	}
	return unsafeName.ReplaceAllString(original, "_")
}

// StoredName is the object key for an upload: "{id}-{sanitized original name}".
func StoredName(id, original string) string {
	return id + "-" + SanitizeName(original)
}
