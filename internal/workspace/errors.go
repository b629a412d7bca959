package workspace

import "errors"

var (
	ErrNotFound   = errors.New("workspace: record not found")
	ErrValidation = errors.New("workspace: validation failed")
)
