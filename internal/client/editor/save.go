package editor

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

// SaveSummary содержит агрегированный результат сохранения правок
type SaveSummary struct {
	Rejected []pkgapi.RejectedEdit // отклонённые серверной валидацией ячейки
	Accepted int                   // принятые правки по всем батчам
}

// SaveEdits сохраняет все pending-правки батчами, строго последовательно:
// каждый батч несёт concurrency tag, возвращённый предыдущим, поэтому
// распараллелить отправку нельзя, не сломав optimistic concurrency.
//
// No-op, если правок нет, сессия не активна или сохранение уже идёт
// (single-flight). Частично отклонённый батч не считается ошибкой:
// отклонённые ячейки попадают в сводку, тег продвигается.
//
// В режиме совместимости сетевых вызовов нет: правки остаются в памяти,
// они понадобятся целиком в момент submission.
func (e *Editor) SaveEdits(ctx context.Context) (*SaveSummary, error) {
	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return &SaveSummary{}, nil
	}
	session := e.sessions.Session()
	pendingCount := e.tracker.PendingCount()
	if session == nil || pendingCount == 0 {
		e.mu.Unlock()
		return &SaveSummary{}, nil
	}
	e.saving = true
	baseID := e.baseID
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.saving = false
		e.mu.Unlock()
	}()

	// Режим совместимости: инкрементального сохранения в legacy-протоколе
	// нет, правки отчитываются принятыми и НЕ очищаются
	if e.sessions.CompatibilityMode() {
		return &SaveSummary{Accepted: pendingCount}, nil
	}

	entries := e.tracker.EditsBatch()
	summary := &SaveSummary{}

	for start := 0; start < len(entries); start += e.cfg.MaxEditsPerBatch {
		end := start + e.cfg.MaxEditsPerBatch
		if end > len(entries) {
			end = len(entries)
		}
		chunk := entries[start:end]

		req := pkgapi.SaveEditsRequest{
			SessionID:   session.ID,
			IfMatchETag: e.sessions.ETag(),
			Edits:       chunk,
		}

		resp, err := e.apiClient.SaveEditsBatch(ctx, baseID, req)
		if err != nil {
			// Остальные батчи не отправляются. Уже принятые остаются
			// применёнными: их правки подтверждены, тег продвинут
			return summary, fmt.Errorf("batch save failed after %d accepted edits: %w", summary.Accepted, err)
		}

		summary.Accepted += resp.Accepted
		summary.Rejected = append(summary.Rejected, resp.Rejected...)

		// Продвигаем тег: следующий батч пойдёт под next_etag этого
		e.sessions.AdvanceETag(resp.NextETag)

		rowIDs := make([]string, 0, len(chunk))
		for _, entry := range chunk {
			rowIDs = append(rowIDs, entry.RowID)
		}
		e.tracker.MarkRowsSaved(rowIDs)
		e.deleteDrafts(rowIDs)
	}

	e.logger.Info("edits saved",
		"base_id", baseID,
		"accepted", summary.Accepted,
		"rejected", len(summary.Rejected),
		"etag", e.sessions.ETag())

	return summary, nil
}
