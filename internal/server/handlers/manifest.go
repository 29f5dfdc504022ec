package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/rowfix/pkg/api"
)

// GetManifest обрабатывает GET /api/v1/bases/{baseId}/manifest?pointer=latest
func (h *QuarantineHandler) GetManifest(w http.ResponseWriter, r *http.Request) {
	baseID := r.PathValue("baseId")

	pointer := r.URL.Query().Get("pointer")
	if pointer != "" && pointer != "latest" {
		h.writeError(w, http.StatusBadRequest, "bad_request", "only pointer=latest is supported")
		return
	}

	manifest, err := h.storage.GetManifest(r.Context(), baseID)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, api.ManifestResponse{
		BaseID:          manifest.BaseID,
		RootID:          manifest.RootID,
		UploadID:        manifest.UploadID,
		ETag:            manifest.ETag,
		Columns:         manifest.Columns,
		EditableColumns: manifest.EditableColumns,
		TotalRows:       manifest.TotalRows,
		ShardCount:      manifest.ShardCount,
	})
}

// Backfill обрабатывает POST /api/v1/bases/{baseId}/backfill
// Идемпотентный repair-вызов: материализует read-model манифеста
func (h *QuarantineHandler) Backfill(w http.ResponseWriter, r *http.Request) {
	baseID := r.PathValue("baseId")

	var req api.BackfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	h.logger.Info("backfill requested", "base_id", baseID, "pointer", req.Pointer)

	if err := h.storage.Backfill(r.Context(), baseID); err != nil {
		h.writeStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// ListVersions обрабатывает GET /api/v1/bases/{baseId}/versions
func (h *QuarantineHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	baseID := r.PathValue("baseId")

	versions, err := h.storage.ListVersions(r.Context(), baseID)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	resp := api.VersionsResponse{Versions: make([]api.VersionSummary, 0, len(versions))}
	for _, v := range versions {
		resp.Versions = append(resp.Versions, api.VersionSummary{
			Version:         v.Version,
			Status:          v.Status,
			UploadID:        v.UploadID,
			RowCount:        v.RowCount,
			QuarantinedRows: v.QuarantinedRows,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}
