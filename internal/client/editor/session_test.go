package editor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/rowfix/internal/client/api"
	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testManifestResponse() *pkgapi.ManifestResponse {
	return &pkgapi.ManifestResponse{
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

// modernAPIMock returns a mocked backend speaking the session protocol
func modernAPIMock() *api.ClientAPIMock {
	return &api.ClientAPIMock{
		GetManifestFunc: func(ctx context.Context, baseID string, pointer string) (*pkgapi.ManifestResponse, error) {
			return testManifestResponse(), nil
		},
		GetVersionsFunc: func(ctx context.Context, baseID string) ([]pkgapi.VersionSummary, error) {
			return []pkgapi.VersionSummary{
				{Version: 2, Status: "quarantined", UploadID: "upload-1", RowCount: 10, QuarantinedRows: 2},
				{Version: 1, Status: "reprocessed", UploadID: "upload-0", RowCount: 10},
			}, nil
		},
		StartSessionFunc: func(ctx context.Context, baseID string, manifestBaseID string) (*pkgapi.SessionResponse, error) {
			return &pkgapi.SessionResponse{
				SessionID:   "sess-1",
				BaseID:      "base-1",
				SessionETag: "session-etag-1",
			}, nil
		},
	}
}

func TestSessionManager_Initialize_Modern(t *testing.T) {
	mockAPI := modernAPIMock()
	manager := NewSessionManager(mockAPI, testLogger())

	result, err := manager.Initialize(context.Background(), "base-1")
	require.NoError(t, err)

	assert.Equal(t, StateReady, manager.State())
	assert.False(t, result.CompatibilityMode)
	assert.Empty(t, result.Notice)

	require.NotNil(t, result.Manifest)
	assert.Equal(t, "base-1", result.Manifest.BaseID)
	assert.Equal(t, []string{"amount"}, result.Manifest.EditableColumns)

	// Тег сессии предпочтительнее тега манифеста
	require.NotNil(t, result.Session)
	assert.Equal(t, "sess-1", result.Session.ID)
	assert.Equal(t, "session-etag-1", result.Session.ETag)

	require.Len(t, result.Lineage, 2)
	assert.Equal(t, 2, result.Lineage[0].Version)

	// Legacy-путь не трогался
	assert.Empty(t, mockAPI.DownloadExtractCalls())
}

func TestSessionManager_Initialize_ManifestETagWhenSessionETagEmpty(t *testing.T) {
	mockAPI := modernAPIMock()
	mockAPI.StartSessionFunc = func(ctx context.Context, baseID string, manifestBaseID string) (*pkgapi.SessionResponse, error) {
		return &pkgapi.SessionResponse{SessionID: "sess-1", BaseID: "base-1"}, nil
	}
	manager := NewSessionManager(mockAPI, testLogger())

	result, err := manager.Initialize(context.Background(), "base-1")
	require.NoError(t, err)
	assert.Equal(t, "etag-1", result.Session.ETag)
}

func TestSessionManager_Initialize_BackfillAndRetry(t *testing.T) {
	manifestCalls := 0
	mockAPI := modernAPIMock()
	mockAPI.GetManifestFunc = func(ctx context.Context, baseID string, pointer string) (*pkgapi.ManifestResponse, error) {
		manifestCalls++
		if manifestCalls == 1 {
			// Read-model не материализована
			return nil, &api.Error{
				StatusCode: http.StatusNotFound,
				Code:       pkgapi.ErrCodeManifestNotFound,
			}
		}
		return testManifestResponse(), nil
	}
	mockAPI.BackfillReadModelFunc = func(ctx context.Context, baseID string, pointer string) error {
		return nil
	}
	manager := NewSessionManager(mockAPI, testLogger())

	result, err := manager.Initialize(context.Background(), "base-1")
	require.NoError(t, err)

	// Ровно одна попытка backfill, повторный запрос манифеста удался
	assert.Len(t, mockAPI.BackfillReadModelCalls(), 1)
	assert.Equal(t, 2, manifestCalls)
	assert.False(t, result.CompatibilityMode)
	assert.Equal(t, StateReady, manager.State())
}

func TestSessionManager_Initialize_AuthorizerMismatchIsFatal(t *testing.T) {
	mockAPI := modernAPIMock()
	mockAPI.GetManifestFunc = func(ctx context.Context, baseID string, pointer string) (*pkgapi.ManifestResponse, error) {
		return nil, &api.Error{StatusCode: http.StatusForbidden, Code: pkgapi.ErrCodeAuthorizerMismatch}
	}
	manager := NewSessionManager(mockAPI, testLogger())

	_, err := manager.Initialize(context.Background(), "base-1")
	require.Error(t, err)

	// Никакого fallback: ни backfill, ни legacy-пути
	assert.Equal(t, StateFailed, manager.State())
	assert.NotEmpty(t, manager.Failure())
	assert.Empty(t, mockAPI.BackfillReadModelCalls())
	assert.Empty(t, mockAPI.DownloadExtractCalls())
}

func TestSessionManager_Initialize_LegacyFallback(t *testing.T) {
	extractCSV := []byte("row_id,amount,currency\nq-1,100,USD\nq-2,200,EUR\n")

	mockAPI := modernAPIMock()
	mockAPI.GetManifestFunc = func(ctx context.Context, baseID string, pointer string) (*pkgapi.ManifestResponse, error) {
		// Бэкенд вообще не знает про манифесты
		return nil, &api.Error{StatusCode: http.StatusNotImplemented, Code: pkgapi.ErrCodeNotSupported}
	}
	mockAPI.BackfillReadModelFunc = func(ctx context.Context, baseID string, pointer string) error {
		return &api.Error{StatusCode: http.StatusNotImplemented, Code: pkgapi.ErrCodeNotSupported}
	}
	mockAPI.DownloadExtractFunc = func(ctx context.Context, baseID string) ([]byte, error) {
		return extractCSV, nil
	}
	manager := NewSessionManager(mockAPI, testLogger())

	result, err := manager.Initialize(context.Background(), "base-1")
	require.NoError(t, err)

	assert.Equal(t, StateReady, manager.State())
	assert.True(t, result.CompatibilityMode)
	assert.True(t, manager.CompatibilityMode())
	assert.NotEmpty(t, result.Notice)
	assert.NotEmpty(t, result.Fingerprint)

	// Синтезированный манифест: редактируемы все колонки кроме row_id
	require.NotNil(t, result.Manifest)
	assert.Equal(t, LegacyETag, result.Manifest.ETag)
	assert.Equal(t, []string{"row_id", "amount", "currency"}, result.Manifest.Columns)
	assert.Equal(t, []string{"amount", "currency"}, result.Manifest.EditableColumns)
	assert.Equal(t, 2, result.Manifest.TotalRows)

	// Локальная сессия с legacy-тегом
	require.NotNil(t, result.Session)
	assert.NotEmpty(t, result.Session.ID)
	assert.Equal(t, LegacyETag, result.Session.ETag)

	// Датасет разобран целиком
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "q-1", result.Rows[0].ID)
	assert.Equal(t, "100", result.Rows[0].Values["amount"])
}

func TestSessionManager_Initialize_LegacyFailureIsFatal(t *testing.T) {
	mockAPI := modernAPIMock()
	mockAPI.GetManifestFunc = func(ctx context.Context, baseID string, pointer string) (*pkgapi.ManifestResponse, error) {
		return nil, &api.Error{StatusCode: http.StatusNotFound}
	}
	mockAPI.BackfillReadModelFunc = func(ctx context.Context, baseID string, pointer string) error {
		return fmt.Errorf("backfill unavailable")
	}
	mockAPI.DownloadExtractFunc = func(ctx context.Context, baseID string) ([]byte, error) {
		return nil, fmt.Errorf("extract endpoint is gone")
	}
	manager := NewSessionManager(mockAPI, testLogger())

	_, err := manager.Initialize(context.Background(), "base-1")
	require.Error(t, err)
	assert.Equal(t, StateFailed, manager.State())
}

func TestSessionManager_ETagLifecycle(t *testing.T) {
	manager := NewSessionManager(modernAPIMock(), testLogger())

	// До инициализации тега нет
	assert.Empty(t, manager.ETag())

	_, err := manager.Initialize(context.Background(), "base-1")
	require.NoError(t, err)
	assert.Equal(t, "session-etag-1", manager.ETag())

	manager.AdvanceETag("session-etag-2")
	assert.Equal(t, "session-etag-2", manager.ETag())

	// Пустой тег не затирает текущий
	manager.AdvanceETag("")
	assert.Equal(t, "session-etag-2", manager.ETag())
}

func TestSessionManager_Initialize_RejectsRestartWithoutReset(t *testing.T) {
	mockAPI := modernAPIMock()
	manager := NewSessionManager(mockAPI, testLogger())

	result, err := manager.Initialize(context.Background(), "base-1")
	require.NoError(t, err)
	require.Equal(t, StateReady, manager.State())

	// Из ready повторная инициализация запрещена, состояние не трогается
	_, err = manager.Initialize(context.Background(), "base-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset first")
	assert.Equal(t, StateReady, manager.State())
	assert.Equal(t, result.Session.ID, manager.Session().ID)
	assert.Len(t, mockAPI.GetManifestCalls(), 1)

	// После Reset открытие снова возможно
	manager.Reset()
	_, err = manager.Initialize(context.Background(), "base-1")
	require.NoError(t, err)
	assert.Equal(t, StateReady, manager.State())
}

func TestSessionManager_Initialize_RejectsRestartAfterFailure(t *testing.T) {
	mockAPI := modernAPIMock()
	mockAPI.GetManifestFunc = func(ctx context.Context, baseID string, pointer string) (*pkgapi.ManifestResponse, error) {
		return nil, &api.Error{StatusCode: http.StatusForbidden, Code: pkgapi.ErrCodeAuthorizerMismatch}
	}
	manager := NewSessionManager(mockAPI, testLogger())

	_, err := manager.Initialize(context.Background(), "base-1")
	require.Error(t, err)
	require.Equal(t, StateFailed, manager.State())

	// failed не перезапускается сам по себе: только через Reset
	_, err = manager.Initialize(context.Background(), "base-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset first")
	assert.Equal(t, StateFailed, manager.State())
	assert.Len(t, mockAPI.GetManifestCalls(), 1)
}

func TestSessionManager_Reset(t *testing.T) {
	manager := NewSessionManager(modernAPIMock(), testLogger())

	_, err := manager.Initialize(context.Background(), "base-1")
	require.NoError(t, err)
	require.Equal(t, StateReady, manager.State())

	manager.Reset()

	assert.Equal(t, StateUninitialized, manager.State())
	assert.Nil(t, manager.Manifest())
	assert.Nil(t, manager.Session())
	assert.Empty(t, manager.Lineage())
	assert.False(t, manager.CompatibilityMode())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "initializing", StateInitializing.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(99).String())
}
