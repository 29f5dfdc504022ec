package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"

	"github.com/iudanet/rowfix/internal/models"
	"github.com/iudanet/rowfix/internal/validation"
	"github.com/iudanet/rowfix/pkg/api"
)

// SubmitReprocess обрабатывает POST /api/v1/bases/{baseId}/reprocess
// Финализирует сессию и создаёт новую версию в lineage
func (h *QuarantineHandler) SubmitReprocess(w http.ResponseWriter, r *http.Request) {
	baseID := r.PathValue("baseId")

	var req api.SubmitReprocessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.SessionID == "" {
		h.writeError(w, http.StatusBadRequest, "bad_request", "session_id is required")
		return
	}
	if err := validation.ValidatePatchNotes(req.PatchNotes); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	newID, err := h.storage.SubmitReprocess(r.Context(), baseID, req.SessionID, req.IfMatchBaseUploadID, req.SubmitToken)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	h.logger.Info("reprocess submitted",
		"base_id", baseID,
		"session_id", req.SessionID,
		"new_id", newID)

	h.writeJSON(w, http.StatusAccepted, api.SubmitReprocessResponse{
		Status:       "accepted",
		NewID:        newID,
		ExecutionRef: "reprocess/" + newID,
	})
}

// LegacyReprocess обрабатывает POST /api/v1/bases/{baseId}/legacy-reprocess
// Одношаговый legacy-протокол: полный набор строк с правками одним запросом
func (h *QuarantineHandler) LegacyReprocess(w http.ResponseWriter, r *http.Request) {
	baseID := r.PathValue("baseId")

	var req api.LegacyReprocessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if err := validation.ValidatePatchNotes(req.PatchNotes); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	if _, err := h.storage.GetManifest(r.Context(), baseID); err != nil {
		h.writeStorageError(w, err)
		return
	}

	h.logger.Info("legacy reprocess submitted",
		"base_id", baseID,
		"rows", len(req.EditedRows))

	h.writeJSON(w, http.StatusAccepted, api.SubmitReprocessResponse{Status: "accepted"})
}

// CompatibilityUpload обрабатывает POST /api/v1/uploads/reprocess
// Запасной путь "загрузить как новый файл"
func (h *QuarantineHandler) CompatibilityUpload(w http.ResponseWriter, r *http.Request) {
	var req api.CompatibilityUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.Filename == "" {
		h.writeError(w, http.StatusBadRequest, "bad_request", "filename is required")
		return
	}

	h.logger.Info("compatibility upload received",
		"filename", req.Filename,
		"rows", len(req.Rows))

	h.writeJSON(w, http.StatusAccepted, api.SubmitReprocessResponse{Status: "accepted"})
}

// DownloadExtract обрабатывает GET /api/v1/bases/{baseId}/extract
// Отдаёт полный карантинный датасет в CSV для режима совместимости
func (h *QuarantineHandler) DownloadExtract(w http.ResponseWriter, r *http.Request) {
	baseID := r.PathValue("baseId")

	manifest, err := h.storage.GetManifest(r.Context(), baseID)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}
	rows, err := h.storage.AllRows(r.Context(), baseID)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)

	header := append([]string{models.RowIDColumn}, manifest.Columns...)
	if err := writer.Write(header); err != nil {
		h.logger.Error("failed to write extract header", "error", err)
		return
	}
	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.ID)
		for _, column := range manifest.Columns {
			record = append(record, row.Values[column])
		}
		if err := writer.Write(record); err != nil {
			h.logger.Error("failed to write extract row", "error", err, "row_id", row.ID)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logger.Error("failed to flush extract", "error", err)
	}
}
