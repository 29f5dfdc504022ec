package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/rowfix/internal/client/storage"
)

// testStorage создает временное BoltDB хранилище для теста
func testStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "drafts-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func testDraft(baseID, rowID string) *storage.Draft {
	return &storage.Draft{
		BaseID:      baseID,
		RowID:       rowID,
		Cells:       map[string]string{"amount": "42"},
		Fingerprint: "etag-1",
		SavedAt:     time.Now().UTC(),
	}
}

func TestStorage_SaveAndListDrafts(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDraft(ctx, testDraft("base-1", "q-1")))
	require.NoError(t, s.SaveDraft(ctx, testDraft("base-1", "q-2")))

	drafts, err := s.ListDrafts(ctx, "base-1")
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "q-1", drafts[0].RowID)
	assert.Equal(t, "base-1", drafts[0].BaseID)
	assert.Equal(t, map[string]string{"amount": "42"}, drafts[0].Cells)
	assert.Equal(t, "etag-1", drafts[0].Fingerprint)
}

func TestStorage_SaveDraft_Overwrite(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDraft(ctx, testDraft("base-1", "q-1")))

	updated := testDraft("base-1", "q-1")
	updated.Cells = map[string]string{"amount": "100", "currency": "EUR"}
	require.NoError(t, s.SaveDraft(ctx, updated))

	drafts, err := s.ListDrafts(ctx, "base-1")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, map[string]string{"amount": "100", "currency": "EUR"}, drafts[0].Cells)
}

func TestStorage_ListDrafts_IsolatedByBase(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDraft(ctx, testDraft("base-1", "q-1")))
	require.NoError(t, s.SaveDraft(ctx, testDraft("base-2", "q-1")))
	// base-1 является префиксом base-10: ключи не должны пересекаться
	require.NoError(t, s.SaveDraft(ctx, testDraft("base-10", "q-1")))

	drafts, err := s.ListDrafts(ctx, "base-1")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "base-1", drafts[0].BaseID)
}

func TestStorage_ListDrafts_Empty(t *testing.T) {
	s := testStorage(t)

	drafts, err := s.ListDrafts(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestStorage_DeleteDraft(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDraft(ctx, testDraft("base-1", "q-1")))
	require.NoError(t, s.DeleteDraft(ctx, "base-1", "q-1"))

	drafts, err := s.ListDrafts(ctx, "base-1")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestStorage_DeleteDraft_NotFound(t *testing.T) {
	s := testStorage(t)

	err := s.DeleteDraft(context.Background(), "base-1", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrDraftNotFound)
}

func TestStorage_ClearDrafts(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDraft(ctx, testDraft("base-1", "q-1")))
	require.NoError(t, s.SaveDraft(ctx, testDraft("base-1", "q-2")))
	require.NoError(t, s.SaveDraft(ctx, testDraft("base-2", "q-1")))

	require.NoError(t, s.ClearDrafts(ctx, "base-1"))

	drafts, err := s.ListDrafts(ctx, "base-1")
	require.NoError(t, err)
	assert.Empty(t, drafts)

	// Черновики других баз не затронуты
	others, err := s.ListDrafts(ctx, "base-2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestStorage_ClearDrafts_Empty(t *testing.T) {
	s := testStorage(t)

	require.NoError(t, s.ClearDrafts(context.Background(), "base-1"))
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "drafts-reopen.db")
	ctx := context.Background()

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.SaveDraft(ctx, testDraft("base-1", "q-1")))
	require.NoError(t, s.Close())

	// Черновики переживают перезапуск клиента
	s2, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		_ = s2.Close()
	}()

	drafts, err := s2.ListDrafts(ctx, "base-1")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "q-1", drafts[0].RowID)
}
