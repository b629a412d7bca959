package repository

// Package repository contains persistence abstractions for the workspace document.
// Implementations live in subpackages (file, postgres) inside this directory.

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Read when no document has been written yet.
var ErrNotExist = errors.New("workspace document does not exist")

// WorkspaceRepository stores the serialized workspace document as one opaque blob.
// No business logic here: normalization and defaults belong to the service layer.
type WorkspaceRepository interface {
	// Read returns the stored bytes, or ErrNotExist if nothing has been written.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored document. Readers never observe a partial write.
	Write(ctx context.Context, data []byte) error

	// Backup keeps a copy of data beside the document, replacing any earlier backup.
	// Used before a stored document that cannot be read faithfully is replaced.
	Backup(ctx context.Context, data []byte) error

	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
}
