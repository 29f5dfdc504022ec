package storage

import "errors"

// Common storage errors
var (
	// ErrBaseNotFound indicates that no dataset exists for the base id
	ErrBaseNotFound = errors.New("base not found")

	// ErrManifestNotReady indicates that the manifest read-model has not
	// been materialized yet; a backfill may repair it
	ErrManifestNotReady = errors.New("manifest read-model not ready")

	// ErrSessionNotFound indicates that editing session was not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrStaleETag indicates that the concurrency tag does not match the
	// current dataset state; the whole batch is rejected
	ErrStaleETag = errors.New("stale concurrency tag")

	// ErrUploadMismatch indicates that the submitted if_match upload id
	// does not match the current base upload
	ErrUploadMismatch = errors.New("base upload id mismatch")
)
