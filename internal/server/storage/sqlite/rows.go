package sqlite

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/iudanet/rowfix/internal/models"
	"github.com/iudanet/rowfix/internal/server/storage"
)

func unmarshalRow(rowID, dataJSON string) (models.Row, error) {
	row := models.Row{ID: rowID}
	if err := json.Unmarshal([]byte(dataJSON), &row.Values); err != nil {
		return models.Row{}, fmt.Errorf("failed to unmarshal row %s: %w", rowID, err)
	}
	return row, nil
}

// encodeCursor кодирует порядковый номер последней отданной строки.
// Клиент трактует курсор как непрозрачный токен.
func encodeCursor(seq int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(seq, 10)))
}

func decodeCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("failed to decode cursor: %w", err)
	}
	seq, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse cursor: %w", err)
	}
	return seq, nil
}

// QueryRows возвращает страницу строк после курсора в порядке загрузки
func (s *Storage) QueryRows(ctx context.Context, baseID, cursor string, limit int) (*storage.RowsPage, error) {
	if _, err := s.GetManifest(ctx, baseID); err != nil {
		return nil, err
	}

	afterSeq, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 500
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, row_id, data
		FROM base_rows
		WHERE base_id = ? AND seq > ?
		ORDER BY seq ASC
		LIMIT ?`, baseID, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	var (
		page    storage.RowsPage
		lastSeq int64
	)
	for rows.Next() {
		var (
			seq      int64
			rowID    string
			dataJSON string
		)
		if err := rows.Scan(&seq, &rowID, &dataJSON); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row, err := unmarshalRow(rowID, dataJSON)
		if err != nil {
			return nil, err
		}
		page.Rows = append(page.Rows, row)
		lastSeq = seq
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	// Курсор выдаётся только если страница заполнена целиком:
	// недобранная страница означает конец датасета
	if len(page.Rows) == limit {
		page.NextCursor = encodeCursor(lastSeq)
	}
	return &page, nil
}

// AllRows возвращает все строки базы в порядке загрузки
func (s *Storage) AllRows(ctx context.Context, baseID string) ([]models.Row, error) {
	if _, err := s.GetManifest(ctx, baseID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT row_id, data FROM base_rows
		WHERE base_id = ? ORDER BY seq ASC`, baseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	var result []models.Row
	for rows.Next() {
		var (
			rowID    string
			dataJSON string
		)
		if err := rows.Scan(&rowID, &dataJSON); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row, err := unmarshalRow(rowID, dataJSON)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return result, nil
}
