package storage

import (
	"context"

	"github.com/iudanet/rowfix/internal/models"
	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

// RowsPage represents one page of quarantined rows with a continuation cursor
type RowsPage struct {
	NextCursor string // empty cursor means the dataset is exhausted
	Rows       []models.Row
}

// EditOutcome represents the result of applying one batch of edits
type EditOutcome struct {
	NextETag string
	Rejected []pkgapi.RejectedEdit
	Accepted int
}

// QuarantineStorage defines server-side storage for quarantined datasets
type QuarantineStorage interface {
	// SeedBase creates a quarantined dataset (development seeding)
	// When pendingManifest is true the manifest read-model stays
	// unmaterialized until Backfill is called
	SeedBase(ctx context.Context, manifest *models.Manifest, rows []models.Row, pendingManifest bool) error

	// GetManifest returns the dataset manifest
	// Returns ErrBaseNotFound or ErrManifestNotReady
	GetManifest(ctx context.Context, baseID string) (*models.Manifest, error)

	// Backfill materializes the manifest read-model; idempotent
	Backfill(ctx context.Context, baseID string) error

	// ListVersions returns the version lineage of a base
	ListVersions(ctx context.Context, baseID string) ([]models.VersionSummary, error)

	// CreateSession opens an editing session bound to the base
	CreateSession(ctx context.Context, baseID string) (*models.Session, error)

	// QueryRows returns one page of rows starting after the opaque cursor
	QueryRows(ctx context.Context, baseID, cursor string, limit int) (*RowsPage, error)

	// ApplyEdits applies one batch of edits under the session concurrency tag
	// The whole batch is rejected with ErrStaleETag when ifMatchETag does
	// not match the current session tag; individual cells hitting
	// non-editable columns or unknown rows are reported as rejected
	ApplyEdits(ctx context.Context, baseID, sessionID, ifMatchETag string, edits []pkgapi.EditEntry) (*EditOutcome, error)

	// SubmitReprocess finalizes the session and creates a new version
	// Returns ErrUploadMismatch when ifMatchUploadID is stale
	SubmitReprocess(ctx context.Context, baseID, sessionID, ifMatchUploadID, submitToken string) (newID string, err error)

	// AllRows returns every quarantined row of the base (legacy extract)
	AllRows(ctx context.Context, baseID string) ([]models.Row, error)
}
