package storage

import (
	"context"
	"time"
)

//go:generate moq -out drafts_mock.go . DraftStorage

// Draft represents locally persisted pending edits for one row.
// Drafts survive a crashed or interrupted editing session and are
// replayed into the edit tracker on the next open, provided the
// dataset state they were taken against still matches.
type Draft struct {
	SavedAt     time.Time         `json:"saved_at"`
	Cells       map[string]string `json:"cells"`
	BaseID      string            `json:"base_id"`
	RowID       string            `json:"row_id"`
	Fingerprint string            `json:"fingerprint"` // manifest etag (modern) or extract fingerprint (legacy)
}

// DraftStorage defines interface for persisting pending edits on client
type DraftStorage interface {
	// SaveDraft stores or updates the draft for one row
	SaveDraft(ctx context.Context, draft *Draft) error

	// ListDrafts returns all drafts for the given base id
	ListDrafts(ctx context.Context, baseID string) ([]*Draft, error)

	// DeleteDraft removes the draft for one row
	// Returns ErrDraftNotFound if no draft exists
	DeleteDraft(ctx context.Context, baseID, rowID string) error

	// ClearDrafts removes all drafts for the given base id
	ClearDrafts(ctx context.Context, baseID string) error
}
