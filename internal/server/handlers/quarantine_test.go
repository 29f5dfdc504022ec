package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/rowfix/internal/models"
	"github.com/iudanet/rowfix/internal/server/storage"
	"github.com/iudanet/rowfix/pkg/api"
)

// mockQuarantineStorage is a mock implementation of QuarantineStorage for testing
type mockQuarantineStorage struct {
	manifest       *models.Manifest
	versions       []models.VersionSummary
	session        *models.Session
	page           *storage.RowsPage
	outcome        *storage.EditOutcome
	rows           []models.Row
	newUploadID    string
	manifestError  error
	backfillError  error
	versionsError  error
	sessionError   error
	queryError     error
	applyError     error
	submitError    error
	backfillCalled bool

	appliedSessionID string
	appliedETag      string
	appliedEdits     []api.EditEntry
	submittedIfMatch string
	submittedToken   string
}

func (m *mockQuarantineStorage) GetManifest(ctx context.Context, baseID string) (*models.Manifest, error) {
	if m.manifestError != nil {
		return nil, m.manifestError
	}
	return m.manifest, nil
}

func (m *mockQuarantineStorage) Backfill(ctx context.Context, baseID string) error {
	m.backfillCalled = true
	return m.backfillError
}

func (m *mockQuarantineStorage) ListVersions(ctx context.Context, baseID string) ([]models.VersionSummary, error) {
	if m.versionsError != nil {
		return nil, m.versionsError
	}
	return m.versions, nil
}

func (m *mockQuarantineStorage) CreateSession(ctx context.Context, baseID string) (*models.Session, error) {
	if m.sessionError != nil {
		return nil, m.sessionError
	}
	return m.session, nil
}

func (m *mockQuarantineStorage) QueryRows(ctx context.Context, baseID, cursor string, limit int) (*storage.RowsPage, error) {
	if m.queryError != nil {
		return nil, m.queryError
	}
	return m.page, nil
}

func (m *mockQuarantineStorage) ApplyEdits(ctx context.Context, baseID, sessionID, ifMatchETag string, edits []api.EditEntry) (*storage.EditOutcome, error) {
	m.appliedSessionID = sessionID
	m.appliedETag = ifMatchETag
	m.appliedEdits = edits
	if m.applyError != nil {
		return nil, m.applyError
	}
	return m.outcome, nil
}

func (m *mockQuarantineStorage) SubmitReprocess(ctx context.Context, baseID, sessionID, ifMatchUploadID, submitToken string) (string, error) {
	m.submittedIfMatch = ifMatchUploadID
	m.submittedToken = submitToken
	if m.submitError != nil {
		return "", m.submitError
	}
	return m.newUploadID, nil
}

func (m *mockQuarantineStorage) AllRows(ctx context.Context, baseID string) ([]models.Row, error) {
	return m.rows, nil
}

func testManifest() *models.Manifest {
	return &models.Manifest{
		BaseID:          "base-1",
		RootID:          "root-1",
		UploadID:        "upload-1",
		ETag:            "etag-1",
		Columns:         []string{"amount", "currency"},
		EditableColumns: []string{"amount"},
		TotalRows:       2,
		ShardCount:      1,
	}
}

func newTestHandler(mock *mockQuarantineStorage) *QuarantineHandler {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewQuarantineHandler(logger, mock)
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestQuarantineHandler_GetManifest(t *testing.T) {
	mock := &mockQuarantineStorage{manifest: testManifest()}
	h := newTestHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bases/base-1/manifest?pointer=latest", nil)
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.GetManifest(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.ManifestResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "base-1", resp.BaseID)
	assert.Equal(t, "upload-1", resp.UploadID)
	assert.Equal(t, "etag-1", resp.ETag)
	assert.Equal(t, []string{"amount", "currency"}, resp.Columns)
	assert.Equal(t, []string{"amount"}, resp.EditableColumns)
	assert.Equal(t, 2, resp.TotalRows)
}

func TestQuarantineHandler_GetManifest_UnsupportedPointer(t *testing.T) {
	h := newTestHandler(&mockQuarantineStorage{manifest: testManifest()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bases/base-1/manifest?pointer=v3", nil)
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.GetManifest(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuarantineHandler_GetManifest_StorageErrors(t *testing.T) {
	tests := []struct {
		storageErr error
		name       string
		wantCode   string
		wantStatus int
	}{
		{
			name:       "base not found",
			storageErr: storage.ErrBaseNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   api.ErrCodeManifestNotFound,
		},
		{
			name:       "manifest not materialized",
			storageErr: storage.ErrManifestNotReady,
			wantStatus: http.StatusNotFound,
			wantCode:   api.ErrCodeManifestNotFound,
		},
		{
			name:       "internal error",
			storageErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockQuarantineStorage{manifestError: tt.storageErr})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bases/base-1/manifest", nil)
			req.SetPathValue("baseId", "base-1")
			w := httptest.NewRecorder()

			h.GetManifest(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantCode, resp.Error)
		})
	}
}

func TestQuarantineHandler_Backfill(t *testing.T) {
	mock := &mockQuarantineStorage{}
	h := newTestHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bases/base-1/backfill",
		jsonBody(t, api.BackfillRequest{Pointer: "latest"}))
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.Backfill(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.True(t, mock.backfillCalled)
}

func TestQuarantineHandler_Backfill_NotFound(t *testing.T) {
	h := newTestHandler(&mockQuarantineStorage{backfillError: storage.ErrBaseNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bases/missing/backfill",
		jsonBody(t, api.BackfillRequest{Pointer: "latest"}))
	req.SetPathValue("baseId", "missing")
	w := httptest.NewRecorder()

	h.Backfill(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuarantineHandler_ListVersions(t *testing.T) {
	mock := &mockQuarantineStorage{
		versions: []models.VersionSummary{
			{Version: 2, UploadID: "upload-2", Status: "processing"},
			{Version: 1, UploadID: "upload-1", Status: "quarantined", RowCount: 10, QuarantinedRows: 2},
		},
	}
	h := newTestHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bases/base-1/versions", nil)
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.ListVersions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.VersionsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Versions, 2)
	assert.Equal(t, 2, resp.Versions[0].Version)
	assert.Equal(t, "quarantined", resp.Versions[1].Status)
}

func TestQuarantineHandler_StartSession(t *testing.T) {
	mock := &mockQuarantineStorage{
		session: &models.Session{ID: "sess-1", BaseID: "base-1", ETag: "etag-1"},
	}
	h := newTestHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bases/base-1/sessions",
		jsonBody(t, api.StartSessionRequest{ManifestBaseID: "base-1"}))
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.StartSession(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp api.SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, "base-1", resp.BaseID)
	assert.Equal(t, "etag-1", resp.SessionETag)
}

func TestQuarantineHandler_StartSession_BaseIDMismatch(t *testing.T) {
	h := newTestHandler(&mockQuarantineStorage{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bases/base-1/sessions",
		jsonBody(t, api.StartSessionRequest{ManifestBaseID: "other-base"}))
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.StartSession(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuarantineHandler_QueryRows(t *testing.T) {
	mock := &mockQuarantineStorage{
		page: &storage.RowsPage{
			Rows: []models.Row{
				{ID: "q-1", Values: map[string]string{"amount": "100", "currency": "USD"}},
			},
			NextCursor: "cursor-b",
		},
	}
	h := newTestHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bases/base-1/rows/query",
		jsonBody(t, api.RowsQueryRequest{Version: "latest", SessionID: "sess-1", Limit: 100}))
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.QueryRows(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.RowsQueryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "q-1", resp.Rows[0].RowID)
	assert.Equal(t, "cursor-b", resp.NextCursor)
}

func TestQuarantineHandler_SaveEdits(t *testing.T) {
	mock := &mockQuarantineStorage{
		outcome: &storage.EditOutcome{
			NextETag: "etag-2",
			Accepted: 1,
			Rejected: []api.RejectedEdit{
				{RowID: "q-2", Column: "currency", Reason: "column is not editable"},
			},
		},
	}
	h := newTestHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bases/base-1/edits",
		jsonBody(t, api.SaveEditsRequest{
			SessionID:   "sess-1",
			IfMatchETag: "etag-1",
			Edits: []api.EditEntry{
				{RowID: "q-1", Cells: map[string]string{"amount": "42"}},
				{RowID: "q-2", Cells: map[string]string{"currency": "EUR"}},
			},
		}))
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.SaveEdits(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sess-1", mock.appliedSessionID)
	assert.Equal(t, "etag-1", mock.appliedETag)
	require.Len(t, mock.appliedEdits, 2)

	var resp api.SaveEditsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "etag-2", resp.NextETag)
	assert.Equal(t, 1, resp.Accepted)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, "q-2", resp.Rejected[0].RowID)
}

func TestQuarantineHandler_SaveEdits_SessionRequired(t *testing.T) {
	h := newTestHandler(&mockQuarantineStorage{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bases/base-1/edits",
		jsonBody(t, api.SaveEditsRequest{IfMatchETag: "etag-1"}))
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.SaveEdits(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuarantineHandler_SaveEdits_StaleETag(t *testing.T) {
	h := newTestHandler(&mockQuarantineStorage{applyError: storage.ErrStaleETag})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bases/base-1/edits",
		jsonBody(t, api.SaveEditsRequest{
			SessionID:   "sess-1",
			IfMatchETag: "stale",
			Edits:       []api.EditEntry{{RowID: "q-1", Cells: map[string]string{"amount": "1"}}},
		}))
	req.SetPathValue("baseId", "base-1")
	w := httptest.NewRecorder()

	h.SaveEdits(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, api.ErrCodeStaleETag, resp.Error)
}

func TestQuarantineHandler_InvalidJSONBody(t *testing.T) {
	h := newTestHandler(&mockQuarantineStorage{})

	paths := map[string]http.HandlerFunc{
		"backfill": h.Backfill,
		"sessions": h.StartSession,
		"rows":     h.QueryRows,
		"edits":    h.SaveEdits,
	}

	for name, handler := range paths {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bases/base-1/x",
				bytes.NewReader([]byte("not json {{{")))
			req.SetPathValue("baseId", "base-1")
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
