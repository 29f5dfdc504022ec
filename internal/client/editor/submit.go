package editor

import (
	"context"
	"fmt"

	"github.com/iudanet/rowfix/internal/models"
	"github.com/iudanet/rowfix/internal/validation"
	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

// SubmitResult содержит результат запуска повторной обработки
type SubmitResult struct {
	Status       string
	NewID        string
	ExecutionRef string
}

// SubmitReprocess отправляет исправленный датасет на повторную обработку.
// Если есть несохранённые правки, сперва выполняется ровно одно сохранение:
// submission всегда сериализуется после save, чтобы не отправить датасет
// без последних правок. Single-flight: параллельная submission отклоняется.
//
// При ошибке pending-правки не очищаются: повтор возможен без
// повторного ввода.
func (e *Editor) SubmitReprocess(ctx context.Context, patchNotes string) (*SubmitResult, error) {
	if err := validation.ValidatePatchNotes(patchNotes); err != nil {
		return nil, fmt.Errorf("invalid patch notes: %w", err)
	}

	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return nil, fmt.Errorf("submission already in progress")
	}
	e.submitting = true
	baseID := e.baseID
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.submitting = false
		e.mu.Unlock()
	}()

	// Сперва добиваем несохранённые правки одним сохранением
	if e.tracker.PendingCount() > 0 {
		if _, err := e.SaveEdits(ctx); err != nil {
			return nil, fmt.Errorf("flush save before submission failed: %w", err)
		}
	}

	if e.sessions.CompatibilityMode() {
		return e.submitLegacy(ctx, baseID, patchNotes)
	}
	return e.submitModern(ctx, baseID, patchNotes)
}

// submitModern отправляет reprocess-запрос по сессионному протоколу
func (e *Editor) submitModern(ctx context.Context, baseID, patchNotes string) (*SubmitResult, error) {
	session := e.sessions.Session()
	manifest := e.sessions.Manifest()
	if session == nil || manifest == nil {
		return nil, fmt.Errorf("no active session")
	}

	req := pkgapi.SubmitReprocessRequest{
		SessionID:           session.ID,
		IfMatchBaseUploadID: manifest.UploadID,
		PatchNotes:          patchNotes,
		SubmitToken:         session.ID + ":" + session.BaseID,
	}

	resp, err := e.apiClient.SubmitReprocess(ctx, baseID, req)
	if err != nil {
		return nil, fmt.Errorf("reprocess submission failed: %w", err)
	}

	e.clearAllDrafts()

	e.logger.Info("reprocess submitted",
		"base_id", baseID, "status", resp.Status, "new_id", resp.NewID)

	return &SubmitResult{
		Status:       resp.Status,
		NewID:        resp.NewID,
		ExecutionRef: resp.ExecutionRef,
	}, nil
}

// submitLegacy отправляет полный набор строк со слитыми правками
// по legacy-протоколу; при его отказе пробует запасной путь
// "загрузить как новый файл"
func (e *Editor) submitLegacy(ctx context.Context, baseID, patchNotes string) (*SubmitResult, error) {
	merged := e.tracker.EditedRows(e.rowStore.Rows())

	req := pkgapi.LegacyReprocessRequest{
		EditedRows: rowsWithoutRowID(merged),
		PatchNotes: patchNotes,
	}

	resp, err := e.apiClient.LegacyReprocess(ctx, baseID, req)
	if err != nil {
		e.logger.Warn("legacy reprocess failed, trying compatibility upload",
			"base_id", baseID, "error", err)

		uploadReq := pkgapi.CompatibilityUploadRequest{
			Filename: baseID + "-remediated.csv",
			Rows:     rowsAsMaps(merged),
		}
		resp, err = e.apiClient.CompatibilityUpload(ctx, uploadReq)
		if err != nil {
			// Ошибка последнего испробованного шага пробрасывается как есть
			return nil, fmt.Errorf("compatibility upload failed: %w", err)
		}
	}

	// Только подтверждённая submission очищает правки режима совместимости
	e.tracker.ClearEdits()
	e.clearAllDrafts()

	e.logger.Info("legacy reprocess submitted",
		"base_id", baseID, "status", resp.Status, "new_id", resp.NewID)

	return &SubmitResult{
		Status:       resp.Status,
		NewID:        resp.NewID,
		ExecutionRef: resp.ExecutionRef,
	}, nil
}

// rowsWithoutRowID возвращает строки как maps без служебной колонки row_id
func rowsWithoutRowID(rows []models.Row) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for i := range rows {
		values := make(map[string]string, len(rows[i].Values))
		for column, value := range rows[i].Values {
			if column == models.RowIDColumn {
				continue
			}
			values[column] = value
		}
		out = append(out, values)
	}
	return out
}

// rowsAsMaps возвращает строки как maps, включая row_id
func rowsAsMaps(rows []models.Row) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for i := range rows {
		values := make(map[string]string, len(rows[i].Values)+1)
		for column, value := range rows[i].Values {
			values[column] = value
		}
		values[models.RowIDColumn] = rows[i].ID
		out = append(out, values)
	}
	return out
}
