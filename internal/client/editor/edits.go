package editor

import (
	"sync"

	"github.com/iudanet/rowfix/internal/models"
	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

// EditTracker отслеживает несохранённые правки ячеек поверх baseline-строк.
// Правки ключуются (row_id, column) и не зависят от пагинации RowStore:
// строка может быть вытеснена из памяти, её правки остаются.
// Несколько правок одной ячейки схлопываются до последнего значения.
type EditTracker struct {
	mu sync.Mutex

	// pending: row_id -> column -> новое значение
	pending map[string]map[string]string
	// order: row_id в порядке первой правки; даёт детерминированное
	// разбиение на батчи
	order []string
	// saved: ячейки, подтверждённые сервером в этой сессии (для UI-индикации)
	// Не очищается между циклами автосохранения
	saved map[string]map[string]struct{}

	focusRowID  string
	focusColumn string
}

// NewEditTracker создает новый трекер правок
func NewEditTracker() *EditTracker {
	return &EditTracker{
		pending: make(map[string]map[string]string),
		saved:   make(map[string]map[string]struct{}),
	}
}

// EditCell записывает правку одной ячейки (last-write-wins)
func (t *EditTracker) EditCell(rowID, column, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cells, ok := t.pending[rowID]
	if !ok {
		cells = make(map[string]string)
		t.pending[rowID] = cells
		t.order = append(t.order, rowID)
	}
	cells[column] = value
}

// CellValue возвращает значение ячейки с наложенной правкой.
// Если правки нет — baseline-значение строки, иначе пустая строка
func (t *EditTracker) CellValue(rowID, column string, baseline *models.Row) string {
	t.mu.Lock()
	if cells, ok := t.pending[rowID]; ok {
		if value, ok := cells[column]; ok {
			t.mu.Unlock()
			return value
		}
	}
	t.mu.Unlock()

	if baseline != nil {
		return baseline.Values[column]
	}
	return ""
}

// IsCellEdited сообщает, есть ли несохранённая правка ячейки
func (t *EditTracker) IsCellEdited(rowID, column string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cells, ok := t.pending[rowID]
	if !ok {
		return false
	}
	_, ok = cells[column]
	return ok
}

// IsRowEdited сообщает, есть ли у строки хотя бы одна несохранённая правка
func (t *EditTracker) IsRowEdited(rowID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.pending[rowID]
	return ok
}

// IsCellSaved сообщает, была ли ячейка подтверждена сервером в этой сессии
func (t *EditTracker) IsCellSaved(rowID, column string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cells, ok := t.saved[rowID]
	if !ok {
		return false
	}
	_, ok = cells[column]
	return ok
}

// SetFocus запоминает ячейку, в которой находится фокус ввода
func (t *EditTracker) SetFocus(rowID, column string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.focusRowID = rowID
	t.focusColumn = column
}

// ClearFocus сбрасывает фокус ввода
func (t *EditTracker) ClearFocus() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.focusRowID = ""
	t.focusColumn = ""
}

// Focus возвращает ячейку с текущим фокусом ввода
func (t *EditTracker) Focus() (rowID, column string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.focusRowID, t.focusColumn
}

// PendingCount возвращает количество строк с несохранёнными правками.
// Значение производное: всегда равно числу ключей pending-map,
// а не общему числу правленых ячеек
func (t *EditTracker) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.pending)
}

// ClearEdits сбрасывает все несохранённые правки. Идемпотентен
func (t *EditTracker) ClearEdits() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = make(map[string]map[string]string)
	t.order = nil
}

// MarkAsSaved переносит все текущие pending-ячейки в saved-набор
// и очищает pending. saved-набор переживает циклы автосохранения:
// ячейка показывается как сохранённая и после опустошения edit map
func (t *EditTracker) MarkAsSaved() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for rowID, cells := range t.pending {
		t.markSavedLocked(rowID, cells)
	}
	t.pending = make(map[string]map[string]string)
	t.order = nil
}

// MarkRowsSaved переносит pending-ячейки перечисленных строк в saved-набор.
// Используется batch save протоколом: принятые сервером чанки
// подтверждаются по мере прохождения, не дожидаясь остальных
func (t *EditTracker) MarkRowsSaved(rowIDs []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	confirmed := make(map[string]struct{}, len(rowIDs))
	for _, rowID := range rowIDs {
		confirmed[rowID] = struct{}{}
		if cells, ok := t.pending[rowID]; ok {
			t.markSavedLocked(rowID, cells)
			delete(t.pending, rowID)
		}
	}

	remaining := t.order[:0]
	for _, rowID := range t.order {
		if _, ok := confirmed[rowID]; !ok {
			remaining = append(remaining, rowID)
		}
	}
	t.order = remaining
}

// markSavedLocked помечает ячейки строки сохранёнными; вызывается под mu
func (t *EditTracker) markSavedLocked(rowID string, cells map[string]string) {
	savedCells, ok := t.saved[rowID]
	if !ok {
		savedCells = make(map[string]struct{}, len(cells))
		t.saved[rowID] = savedCells
	}
	for column := range cells {
		savedCells[column] = struct{}{}
	}
}

// EditsBatch возвращает snapshot всех pending-правок в порядке первой правки
func (t *EditTracker) EditsBatch() []pkgapi.EditEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := make([]pkgapi.EditEntry, 0, len(t.order))
	for _, rowID := range t.order {
		cells, ok := t.pending[rowID]
		if !ok {
			continue
		}
		copied := make(map[string]string, len(cells))
		for column, value := range cells {
			copied[column] = value
		}
		entries = append(entries, pkgapi.EditEntry{RowID: rowID, Cells: copied})
	}
	return entries
}

// EditedRows возвращает baseline-строки со слитыми в них правками.
// Используется legacy submission: протокол требует полный набор строк
func (t *EditTracker) EditedRows(baseline []models.Row) []models.Row {
	t.mu.Lock()
	defer t.mu.Unlock()

	merged := make([]models.Row, 0, len(baseline))
	for i := range baseline {
		row := baseline[i].Clone()
		if cells, ok := t.pending[row.ID]; ok {
			for column, value := range cells {
				row.Values[column] = value
			}
		}
		merged = append(merged, row)
	}
	return merged
}
