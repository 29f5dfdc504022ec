package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/rowfix/internal/server/storage"
)

// SubmitReprocess финализирует сессию и порождает новую версию lineage.
// Несовпадение if_match upload id означает конкурирующую submission.
func (s *Storage) SubmitReprocess(ctx context.Context, baseID, sessionID, ifMatchUploadID, _ string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var uploadID string
	err = tx.QueryRowContext(ctx,
		`SELECT upload_id FROM bases WHERE base_id = ?`, baseID,
	).Scan(&uploadID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrBaseNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query base: %w", err)
	}

	if ifMatchUploadID != "" && ifMatchUploadID != uploadID {
		return "", storage.ErrUploadMismatch
	}

	var sessionExists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM sessions WHERE session_id = ? AND base_id = ?`,
		sessionID, baseID,
	).Scan(&sessionExists)
	if err != nil {
		return "", fmt.Errorf("failed to query session: %w", err)
	}
	if sessionExists == 0 {
		return "", storage.ErrSessionNotFound
	}

	var rowCount int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM base_rows WHERE base_id = ?`, baseID,
	).Scan(&rowCount)
	if err != nil {
		return "", fmt.Errorf("failed to count rows: %w", err)
	}

	newUploadID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO versions (base_id, version, upload_id, status, row_count, quarantined_rows)
		VALUES (?, (SELECT COALESCE(MAX(version), 0) + 1 FROM versions WHERE base_id = ?), ?, 'processing', ?, 0)`,
		baseID, baseID, newUploadID, rowCount,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert version: %w", err)
	}

	// Новый upload замещает текущий; последующие submission под старым
	// upload id получают конфликт
	_, err = tx.ExecContext(ctx,
		`UPDATE bases SET upload_id = ? WHERE base_id = ?`, newUploadID, baseID)
	if err != nil {
		return "", fmt.Errorf("failed to update base upload: %w", err)
	}

	// Сессия закрыта: дальнейшие батчи правок под ней не принимаются
	_, err = tx.ExecContext(ctx,
		`DELETE FROM sessions WHERE session_id = ?`, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to close session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return newUploadID, nil
}
