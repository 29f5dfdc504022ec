package extract

import (
	"bytes"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/iudanet/rowfix/internal/models"
)

// Extract представляет локально разобранный карантинный extract.
// Используется в режиме совместимости, когда бэкенд не поддерживает
// сессионный протокол и отдаёт датасет единым CSV
type Extract struct {
	Columns     []string     // колонки в порядке заголовка CSV
	Rows        []models.Row // все строки extract
	Fingerprint string       // BLAKE2b-256 отпечаток исходных байт
}

// Parse разбирает CSV extract в строки и колонки.
// Первая запись — заголовок; колонка row_id обязательна. Если её нет,
// идентификаторы строк синтезируются из порядкового номера.
func Parse(data []byte) (*Extract, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("extract is empty")
		}
		return nil, fmt.Errorf("failed to read extract header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("extract header has no columns")
	}

	rowIDIdx := -1
	for i, col := range header {
		if col == models.RowIDColumn {
			rowIDIdx = i
			break
		}
	}

	var rows []models.Row
	for lineNo := 2; ; lineNo++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read extract line %d: %w", lineNo, err)
		}

		values := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				values[col] = record[i]
			} else {
				values[col] = ""
			}
		}

		var rowID string
		if rowIDIdx >= 0 && rowIDIdx < len(record) && record[rowIDIdx] != "" {
			rowID = record[rowIDIdx]
		} else {
			// Синтезируем идентификатор из номера строки
			rowID = "row-" + strconv.Itoa(lineNo-1)
			values[models.RowIDColumn] = rowID
		}

		rows = append(rows, models.Row{ID: rowID, Values: values})
	}

	columns := header
	if rowIDIdx < 0 {
		columns = append([]string{models.RowIDColumn}, header...)
	}

	return &Extract{
		Columns:     columns,
		Rows:        rows,
		Fingerprint: Fingerprint(data),
	}, nil
}

// EditableColumns возвращает колонки extract, доступные для правки:
// все, кроме служебной row_id
func (e *Extract) EditableColumns() []string {
	editable := make([]string, 0, len(e.Columns))
	for _, col := range e.Columns {
		if col == models.RowIDColumn {
			continue
		}
		editable = append(editable, col)
	}
	return editable
}

// Fingerprint возвращает hex-представление BLAKE2b-256 отпечатка данных.
// Используется draft store для инвалидации черновиков при смене extract
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
