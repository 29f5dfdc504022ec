package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/rowfix/pkg/api"
)

// StartSession обрабатывает POST /api/v1/bases/{baseId}/sessions
func (h *QuarantineHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	baseID := r.PathValue("baseId")

	var req api.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	// Сессия привязывается к манифесту; base_id из тела обязан совпадать с путём
	if req.ManifestBaseID != "" && req.ManifestBaseID != baseID {
		h.writeError(w, http.StatusBadRequest, "bad_request", "manifest base_id does not match path")
		return
	}

	session, err := h.storage.CreateSession(r.Context(), baseID)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	h.logger.Info("session opened", "base_id", baseID, "session_id", session.ID)

	h.writeJSON(w, http.StatusCreated, api.SessionResponse{
		SessionID:   session.ID,
		BaseID:      session.BaseID,
		SessionETag: session.ETag,
	})
}

// QueryRows обрабатывает POST /api/v1/bases/{baseId}/rows/query
// Возвращает страницу строк с opaque-курсором продолжения
func (h *QuarantineHandler) QueryRows(w http.ResponseWriter, r *http.Request) {
	baseID := r.PathValue("baseId")

	var req api.RowsQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	page, err := h.storage.QueryRows(r.Context(), baseID, req.Cursor, req.Limit)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	resp := api.RowsQueryResponse{
		Rows:       make([]api.RowPayload, 0, len(page.Rows)),
		NextCursor: page.NextCursor,
	}
	for _, row := range page.Rows {
		resp.Rows = append(resp.Rows, api.RowPayload{
			RowID:  row.ID,
			Values: row.Values,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// SaveEdits обрабатывает POST /api/v1/bases/{baseId}/edits
// Батч применяется атомарно под concurrency-тегом сессии
func (h *QuarantineHandler) SaveEdits(w http.ResponseWriter, r *http.Request) {
	baseID := r.PathValue("baseId")

	var req api.SaveEditsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.SessionID == "" {
		h.writeError(w, http.StatusBadRequest, "bad_request", "session_id is required")
		return
	}

	outcome, err := h.storage.ApplyEdits(r.Context(), baseID, req.SessionID, req.IfMatchETag, req.Edits)
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	h.logger.Info("edits batch applied",
		"base_id", baseID,
		"session_id", req.SessionID,
		"accepted", outcome.Accepted,
		"rejected", len(outcome.Rejected))

	h.writeJSON(w, http.StatusOK, api.SaveEditsResponse{
		NextETag: outcome.NextETag,
		Rejected: outcome.Rejected,
		Accepted: outcome.Accepted,
	})
}
