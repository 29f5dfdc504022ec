package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/rowfix/internal/models"
)

func TestEditTracker_EditCell_LastWriteWins(t *testing.T) {
	tracker := NewEditTracker()

	tracker.EditCell("q-1", "amount", "10")
	tracker.EditCell("q-1", "amount", "20")
	tracker.EditCell("q-1", "amount", "30")

	// Несколько правок одной ячейки схлопываются до последнего значения
	batch := tracker.EditsBatch()
	require.Len(t, batch, 1)
	assert.Equal(t, "q-1", batch[0].RowID)
	assert.Equal(t, map[string]string{"amount": "30"}, batch[0].Cells)
	assert.Equal(t, 1, tracker.PendingCount())
}

func TestEditTracker_CellValue_OverlaysBaseline(t *testing.T) {
	tracker := NewEditTracker()
	baseline := &models.Row{
		ID:     "q-1",
		Values: map[string]string{"amount": "100", "currency": "USD"},
	}

	// До правки видно baseline-значение
	assert.Equal(t, "100", tracker.CellValue("q-1", "amount", baseline))

	tracker.EditCell("q-1", "amount", "250")

	// Правка перекрывает baseline, нетронутая колонка остаётся серверной
	assert.Equal(t, "250", tracker.CellValue("q-1", "amount", baseline))
	assert.Equal(t, "USD", tracker.CellValue("q-1", "currency", baseline))

	// Без baseline-строки и без правки — пустая строка
	assert.Equal(t, "", tracker.CellValue("q-2", "amount", nil))
}

func TestEditTracker_PendingCount_CountsRowsNotCells(t *testing.T) {
	tracker := NewEditTracker()

	tracker.EditCell("q-1", "amount", "10")
	tracker.EditCell("q-1", "currency", "EUR")
	tracker.EditCell("q-2", "amount", "999")

	// Считаются строки с правками, а не отдельные ячейки
	assert.Equal(t, 2, tracker.PendingCount())
}

func TestEditTracker_EditedFlags(t *testing.T) {
	tracker := NewEditTracker()
	tracker.EditCell("q-1", "amount", "10")

	assert.True(t, tracker.IsCellEdited("q-1", "amount"))
	assert.False(t, tracker.IsCellEdited("q-1", "currency"))
	assert.True(t, tracker.IsRowEdited("q-1"))
	assert.False(t, tracker.IsRowEdited("q-2"))
}

func TestEditTracker_MarkAsSaved(t *testing.T) {
	tracker := NewEditTracker()
	tracker.EditCell("q-1", "amount", "10")
	tracker.EditCell("q-2", "currency", "EUR")

	tracker.MarkAsSaved()

	// Pending опустошён, но индикация "сохранено" сохраняется
	assert.Equal(t, 0, tracker.PendingCount())
	assert.True(t, tracker.IsCellSaved("q-1", "amount"))
	assert.True(t, tracker.IsCellSaved("q-2", "currency"))
	assert.False(t, tracker.IsCellSaved("q-1", "currency"))
}

func TestEditTracker_MarkRowsSaved_Partial(t *testing.T) {
	tracker := NewEditTracker()
	tracker.EditCell("q-1", "amount", "10")
	tracker.EditCell("q-2", "amount", "20")
	tracker.EditCell("q-3", "amount", "30")

	// Подтверждаем только первый чанк
	tracker.MarkRowsSaved([]string{"q-1", "q-2"})

	assert.Equal(t, 1, tracker.PendingCount())
	assert.True(t, tracker.IsCellSaved("q-1", "amount"))
	assert.True(t, tracker.IsCellSaved("q-2", "amount"))
	assert.False(t, tracker.IsCellSaved("q-3", "amount"))

	// Неподтверждённая строка остаётся в следующем батче
	batch := tracker.EditsBatch()
	require.Len(t, batch, 1)
	assert.Equal(t, "q-3", batch[0].RowID)
}

func TestEditTracker_EditsBatch_DeterministicOrder(t *testing.T) {
	tracker := NewEditTracker()
	tracker.EditCell("q-3", "amount", "3")
	tracker.EditCell("q-1", "amount", "1")
	tracker.EditCell("q-2", "amount", "2")
	// Повторная правка первой строки не меняет её место в порядке
	tracker.EditCell("q-3", "currency", "EUR")

	batch := tracker.EditsBatch()
	require.Len(t, batch, 3)
	assert.Equal(t, "q-3", batch[0].RowID)
	assert.Equal(t, "q-1", batch[1].RowID)
	assert.Equal(t, "q-2", batch[2].RowID)
}

func TestEditTracker_ClearEdits(t *testing.T) {
	tracker := NewEditTracker()
	tracker.EditCell("q-1", "amount", "10")

	tracker.ClearEdits()
	assert.Equal(t, 0, tracker.PendingCount())
	assert.Empty(t, tracker.EditsBatch())

	// Идемпотентность
	tracker.ClearEdits()
	assert.Equal(t, 0, tracker.PendingCount())
}

func TestEditTracker_Focus(t *testing.T) {
	tracker := NewEditTracker()

	tracker.SetFocus("q-1", "amount")
	rowID, column := tracker.Focus()
	assert.Equal(t, "q-1", rowID)
	assert.Equal(t, "amount", column)

	tracker.ClearFocus()
	rowID, column = tracker.Focus()
	assert.Empty(t, rowID)
	assert.Empty(t, column)
}

func TestEditTracker_EditedRows_MergesPendingIntoBaseline(t *testing.T) {
	tracker := NewEditTracker()
	tracker.EditCell("q-2", "amount", "999")

	baseline := []models.Row{
		{ID: "q-1", Values: map[string]string{"amount": "1"}},
		{ID: "q-2", Values: map[string]string{"amount": "2", "currency": "USD"}},
	}

	merged := tracker.EditedRows(baseline)
	require.Len(t, merged, 2)
	assert.Equal(t, "1", merged[0].Values["amount"])
	assert.Equal(t, "999", merged[1].Values["amount"])
	assert.Equal(t, "USD", merged[1].Values["currency"])

	// Baseline не мутируется: merge работает на копиях
	assert.Equal(t, "2", baseline[1].Values["amount"])
}
