package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/rowfix/internal/models"
	"github.com/iudanet/rowfix/internal/server/storage"
	"github.com/iudanet/rowfix/pkg/api"
)

// QuarantineStorage определяет интерфейс хранилища карантинных датасетов
type QuarantineStorage interface {
	GetManifest(ctx context.Context, baseID string) (*models.Manifest, error)
	Backfill(ctx context.Context, baseID string) error
	ListVersions(ctx context.Context, baseID string) ([]models.VersionSummary, error)
	CreateSession(ctx context.Context, baseID string) (*models.Session, error)
	QueryRows(ctx context.Context, baseID, cursor string, limit int) (*storage.RowsPage, error)
	ApplyEdits(ctx context.Context, baseID, sessionID, ifMatchETag string, edits []api.EditEntry) (*storage.EditOutcome, error)
	SubmitReprocess(ctx context.Context, baseID, sessionID, ifMatchUploadID, submitToken string) (string, error)
	AllRows(ctx context.Context, baseID string) ([]models.Row, error)
}

// QuarantineHandler обрабатывает запросы редактирования карантинных датасетов
type QuarantineHandler struct {
	logger  *slog.Logger
	storage QuarantineStorage
}

// NewQuarantineHandler создает новый handler карантинных датасетов
func NewQuarantineHandler(logger *slog.Logger, storage QuarantineStorage) *QuarantineHandler {
	return &QuarantineHandler{
		logger:  logger,
		storage: storage,
	}
}

// writeJSON сериализует ответ; ошибки кодирования только логируются,
// статус к этому моменту уже отправлен
func (h *QuarantineHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeError отправляет машинный код ошибки в формате ErrorResponse
func (h *QuarantineHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, api.ErrorResponse{Error: code, Message: message})
}

// writeStorageError транслирует ошибки хранилища в HTTP-статусы и коды,
// по которым клиент классифицирует отказ
func (h *QuarantineHandler) writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrBaseNotFound):
		h.writeError(w, http.StatusNotFound, api.ErrCodeManifestNotFound, "base not found")
	case errors.Is(err, storage.ErrManifestNotReady):
		h.writeError(w, http.StatusNotFound, api.ErrCodeManifestNotFound, "manifest read model is not materialized")
	case errors.Is(err, storage.ErrSessionNotFound):
		h.writeError(w, http.StatusNotFound, "session_not_found", "editing session not found")
	case errors.Is(err, storage.ErrStaleETag):
		h.writeError(w, http.StatusConflict, api.ErrCodeStaleETag, "concurrency tag is stale, re-open the session")
	case errors.Is(err, storage.ErrUploadMismatch):
		h.writeError(w, http.StatusConflict, api.ErrCodeStaleETag, "base upload changed, re-open the session")
	default:
		h.logger.Error("storage error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
