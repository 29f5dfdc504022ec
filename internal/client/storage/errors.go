package storage

import "errors"

// Common client storage errors
var (
	// ErrDraftNotFound indicates that no draft exists for the requested row
	ErrDraftNotFound = errors.New("draft not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
