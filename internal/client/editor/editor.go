package editor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/rowfix/internal/client/api"
	"github.com/iudanet/rowfix/internal/client/config"
	"github.com/iudanet/rowfix/internal/client/storage"
	"github.com/iudanet/rowfix/internal/models"
	"github.com/iudanet/rowfix/internal/validation"
)

// Editor собирает все компоненты сессии редактирования карантина
// в один жизненный цикл: open -> initialize -> edit/autosave loop ->
// submit -> close. Один открытый редактор владеет своим набором
// session manager / row store / edit tracker; между редакторами
// ничего не разделяется.
type Editor struct {
	mu sync.Mutex

	cfg       config.Config
	apiClient api.ClientAPI
	drafts    storage.DraftStorage // опционален: nil отключает черновики
	logger    *slog.Logger

	sessions *SessionManager
	rowStore *RowStore
	tracker  *EditTracker
	autosave *AutosaveScheduler

	baseID      string
	notice      string
	fingerprint string // тег состояния датасета для инвалидации черновиков

	saving     bool
	submitting bool
	closed     bool
}

// NewEditor создает новый редактор карантинных строк.
// drafts может быть nil: тогда черновики не персистятся
func NewEditor(apiClient api.ClientAPI, drafts storage.DraftStorage, cfg config.Config, logger *slog.Logger) *Editor {
	e := &Editor{
		cfg:       cfg,
		apiClient: apiClient,
		drafts:    drafts,
		logger:    logger,
		sessions:  NewSessionManager(apiClient, logger),
		tracker:   NewEditTracker(),
	}
	e.rowStore = NewRowStore(apiClient, cfg)
	e.autosave = NewAutosaveScheduler(cfg.AutosaveDebounce, e.autosaveFire)
	return e
}

// Open инициализирует сессию и загружает первую страницу строк.
// В режиме совместимости датасет загружается целиком
func (e *Editor) Open(ctx context.Context, baseID string) error {
	if err := validation.ValidateBaseID(baseID); err != nil {
		return fmt.Errorf("invalid base id: %w", err)
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return fmt.Errorf("editor is closed")
	}
	e.baseID = baseID
	e.mu.Unlock()

	result, err := e.sessions.Initialize(ctx, baseID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.notice = result.Notice
	if result.CompatibilityMode {
		e.fingerprint = result.Fingerprint
	} else {
		e.fingerprint = result.Session.ETag
	}
	e.mu.Unlock()

	if result.CompatibilityMode {
		e.rowStore.SetRows(result.Rows)
	} else {
		if err := e.rowStore.Initialize(ctx, baseID, result.Session.ID); err != nil {
			return err
		}
	}

	e.recoverDrafts(ctx)

	return nil
}

// Close завершает сессию редактирования. Таймер автосохранения
// гарантированно отменяется: после Close сохранение не сработает
func (e *Editor) Close() {
	e.autosave.Stop()

	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

// EditCell записывает правку одной ячейки. Правка сразу видна в гриде
// (optimistic update baseline-строки) и попадает в pending-набор;
// автосохранение перезапускает свой debounce-таймер
func (e *Editor) EditCell(rowID, column, value string) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return fmt.Errorf("editor is closed")
	}
	e.mu.Unlock()

	manifest := e.sessions.Manifest()
	if manifest == nil {
		return fmt.Errorf("editor is not initialized")
	}
	if !manifest.IsEditable(column) {
		return fmt.Errorf("column %q is not editable", column)
	}

	e.tracker.EditCell(rowID, column, value)
	e.rowStore.UpdateRow(rowID, map[string]string{column: value})
	e.saveDraft(rowID)

	e.autosave.Update(e.tracker.PendingCount())

	return nil
}

// CellValue возвращает значение ячейки с наложенной правкой
func (e *Editor) CellValue(rowID, column string) string {
	row, ok := e.rowStore.Row(rowID)
	if !ok {
		return e.tracker.CellValue(rowID, column, nil)
	}
	return e.tracker.CellValue(rowID, column, &row)
}

// HandleBodyScrollEnd реагирует на прокрутку грида: если прокрутка
// приблизилась к концу загруженных строк, подгружает следующую страницу.
// Возвращает количество добавленных строк
func (e *Editor) HandleBodyScrollEnd(ctx context.Context, scrollHeight, scrollTop, clientHeight int) (int, error) {
	if !NearBottom(scrollHeight, scrollTop, clientHeight, e.cfg.FetchThreshold) {
		return 0, nil
	}
	return e.rowStore.FetchNext(ctx)
}

// VisibleWindow вычисляет видимый диапазон строк для текущего окна памяти
func (e *Editor) VisibleWindow(scrollOffset, viewportHeight int) (start, end int) {
	return VisibleRange(scrollOffset, viewportHeight, e.cfg.RowHeight, e.cfg.Overscan, e.rowStore.RowCount())
}

// autosaveFire вызывается debounce-таймером автосохранения
func (e *Editor) autosaveFire() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := e.SaveEdits(ctx); err != nil {
		// Ошибка автосохранения не фатальна: pending-индикатор
		// остаётся, пользователь видит несохранённую работу
		e.logger.Warn("autosave failed", "base_id", e.baseID, "error", err)
	}
}

// saveDraft персистит черновик строки (best effort)
func (e *Editor) saveDraft(rowID string) {
	if e.drafts == nil {
		return
	}

	cells := make(map[string]string)
	for _, entry := range e.tracker.EditsBatch() {
		if entry.RowID == rowID {
			cells = entry.Cells
			break
		}
	}
	if len(cells) == 0 {
		return
	}

	e.mu.Lock()
	fingerprint := e.fingerprint
	baseID := e.baseID
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	draft := &storage.Draft{
		BaseID:      baseID,
		RowID:       rowID,
		Cells:       cells,
		Fingerprint: fingerprint,
		SavedAt:     time.Now(),
	}
	if err := e.drafts.SaveDraft(ctx, draft); err != nil {
		e.logger.Warn("failed to persist draft", "base_id", baseID, "row_id", rowID, "error", err)
	}
}

// recoverDrafts восстанавливает черновики прошлой прерванной сессии.
// Черновики, снятые против другого состояния датасета, отбрасываются
func (e *Editor) recoverDrafts(ctx context.Context) {
	if e.drafts == nil {
		return
	}

	e.mu.Lock()
	baseID := e.baseID
	fingerprint := e.fingerprint
	e.mu.Unlock()

	drafts, err := e.drafts.ListDrafts(ctx, baseID)
	if err != nil {
		e.logger.Warn("failed to list drafts", "base_id", baseID, "error", err)
		return
	}

	manifest := e.sessions.Manifest()
	recovered, discarded := 0, 0
	for _, draft := range drafts {
		if draft.Fingerprint != fingerprint {
			discarded++
			if err := e.drafts.DeleteDraft(ctx, baseID, draft.RowID); err != nil {
				e.logger.Warn("failed to discard stale draft", "row_id", draft.RowID, "error", err)
			}
			continue
		}
		for column, value := range draft.Cells {
			if manifest != nil && !manifest.IsEditable(column) {
				continue
			}
			e.tracker.EditCell(draft.RowID, column, value)
			e.rowStore.UpdateRow(draft.RowID, map[string]string{column: value})
		}
		recovered++
	}

	if recovered > 0 || discarded > 0 {
		e.logger.Info("draft recovery finished",
			"base_id", baseID, "recovered", recovered, "discarded", discarded)
		e.autosave.Update(e.tracker.PendingCount())
	}
}

// deleteDrafts удаляет черновики подтверждённых сервером строк (best effort)
func (e *Editor) deleteDrafts(rowIDs []string) {
	if e.drafts == nil {
		return
	}

	e.mu.Lock()
	baseID := e.baseID
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, rowID := range rowIDs {
		if err := e.drafts.DeleteDraft(ctx, baseID, rowID); err != nil && err != storage.ErrDraftNotFound {
			e.logger.Warn("failed to delete draft", "base_id", baseID, "row_id", rowID, "error", err)
		}
	}
}

// clearAllDrafts удаляет все черновики базы (после успешной submission)
func (e *Editor) clearAllDrafts() {
	if e.drafts == nil {
		return
	}

	e.mu.Lock()
	baseID := e.baseID
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.drafts.ClearDrafts(ctx, baseID); err != nil {
		e.logger.Warn("failed to clear drafts", "base_id", baseID, "error", err)
	}
}

// Rows возвращает текущее окно строк
func (e *Editor) Rows() []models.Row {
	return e.rowStore.Rows()
}

// Columns возвращает полный список колонок манифеста
func (e *Editor) Columns() []string {
	manifest := e.sessions.Manifest()
	if manifest == nil {
		return nil
	}
	return manifest.Columns
}

// EditableColumns возвращает колонки, доступные для правки
func (e *Editor) EditableColumns() []string {
	manifest := e.sessions.Manifest()
	if manifest == nil {
		return nil
	}
	return manifest.EditableColumns
}

// PendingCount возвращает количество строк с несохранёнными правками
func (e *Editor) PendingCount() int {
	return e.tracker.PendingCount()
}

// Saving сообщает, идёт ли сохранение
func (e *Editor) Saving() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.saving
}

// Submitting сообщает, идёт ли submission
func (e *Editor) Submitting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.submitting
}

// CompatibilityMode сообщает, активен ли режим совместимости
func (e *Editor) CompatibilityMode() bool {
	return e.sessions.CompatibilityMode()
}

// Lineage возвращает историю версий файла
func (e *Editor) Lineage() []models.VersionSummary {
	return e.sessions.Lineage()
}

// Notice возвращает нефатальное уведомление инициализации (если есть)
func (e *Editor) Notice() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.notice
}

// State возвращает состояние машины сессии
func (e *Editor) State() State {
	return e.sessions.State()
}

// Tracker возвращает edit tracker редактора (для UI-индикации ячеек)
func (e *Editor) Tracker() *EditTracker {
	return e.tracker
}

// Store возвращает row store редактора
func (e *Editor) Store() *RowStore {
	return e.rowStore
}
