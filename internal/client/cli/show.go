package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Минимальная ширина колонки при табличном выводе
const minColumnWidth = 8

// runShow показывает окно карантинных строк вокруг заданного смещения.
// Высота терминала используется как viewport для расчёта видимого окна
func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing base id. Usage: rowfix show <base-id> [offset]")
	}
	baseID := args[0]

	offset := 0
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid offset: %q", args[1])
		}
		offset = parsed
	}

	ed := c.newEditor()
	defer ed.Close()

	if err := ed.Open(ctx, baseID); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	if notice := ed.Notice(); notice != "" {
		c.io.Printf("Note: %s\n\n", notice)
	}

	width, height := c.io.TermSize()
	// Header строки таблицы и подвал занимают часть высоты
	viewport := height - 4
	if viewport < 1 {
		viewport = 1
	}

	// Подгружаем страницы, пока окно не покрывает запрошенное смещение
	for ed.Store().RowCount() <= offset && ed.Store().HasMore() {
		if _, err := ed.Store().FetchNext(ctx); err != nil {
			return fmt.Errorf("failed to fetch rows: %w", err)
		}
	}

	start, end := ed.VisibleWindow(offset, viewport)
	rows := ed.Rows()
	columns := ed.Columns()

	c.io.Println("=== Quarantined Rows ===")
	c.io.Println()

	colWidth := width / max(1, len(columns))
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}

	header := make([]string, 0, len(columns))
	for _, col := range columns {
		header = append(header, pad(col, colWidth))
	}
	c.io.Println(strings.Join(header, " "))

	for i := start; i < end && i < len(rows); i++ {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			value := ed.CellValue(rows[i].ID, col)
			cells = append(cells, pad(value, colWidth))
		}
		c.io.Println(strings.Join(cells, " "))
	}

	c.io.Println()
	c.io.Printf("rows %d-%d of %d loaded (more on server: %v)\n",
		start, end, ed.Store().RowCount(), ed.Store().HasMore())

	return nil
}

// pad усекает или дополняет значение до ширины колонки.
// Считаем в рунах, чтобы не разрезать multibyte-символ посередине
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
