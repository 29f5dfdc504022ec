package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/rowfix/internal/models"
	"github.com/iudanet/rowfix/internal/server/storage"
)

// SeedBase создаёт карантинный датасет вместе со строками и первой
// записью lineage. Используется dev-сидингом и тестами.
func (s *Storage) SeedBase(ctx context.Context, manifest *models.Manifest, rows []models.Row, pendingManifest bool) error {
	columnsJSON, err := json.Marshal(manifest.Columns)
	if err != nil {
		return fmt.Errorf("failed to marshal columns: %w", err)
	}
	editableJSON, err := json.Marshal(manifest.EditableColumns)
	if err != nil {
		return fmt.Errorf("failed to marshal editable columns: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ready := 1
	if pendingManifest {
		ready = 0
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bases (base_id, root_id, upload_id, etag, columns, editable_columns, total_rows, shard_count, manifest_ready)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		manifest.BaseID, manifest.RootID, manifest.UploadID, manifest.ETag,
		string(columnsJSON), string(editableJSON), len(rows), manifest.ShardCount, ready,
	)
	if err != nil {
		return fmt.Errorf("failed to insert base: %w", err)
	}

	for i, row := range rows {
		dataJSON, err := json.Marshal(row.Values)
		if err != nil {
			return fmt.Errorf("failed to marshal row %s: %w", row.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO base_rows (base_id, seq, row_id, data)
			VALUES (?, ?, ?, ?)`,
			manifest.BaseID, i+1, row.ID, string(dataJSON),
		)
		if err != nil {
			return fmt.Errorf("failed to insert row %s: %w", row.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO versions (base_id, version, upload_id, status, row_count, quarantined_rows)
		VALUES (?, 1, ?, 'quarantined', ?, ?)`,
		manifest.BaseID, manifest.UploadID, len(rows), len(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetManifest возвращает манифест датасета.
// Датасет с несобранной read-model отдаёт ErrManifestNotReady.
func (s *Storage) GetManifest(ctx context.Context, baseID string) (*models.Manifest, error) {
	var (
		m            models.Manifest
		columnsJSON  string
		editableJSON string
		ready        int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT base_id, root_id, upload_id, etag, columns, editable_columns, total_rows, shard_count, manifest_ready
		FROM bases WHERE base_id = ?`, baseID,
	).Scan(&m.BaseID, &m.RootID, &m.UploadID, &m.ETag, &columnsJSON, &editableJSON, &m.TotalRows, &m.ShardCount, &ready)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrBaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query base: %w", err)
	}

	if ready == 0 {
		return nil, storage.ErrManifestNotReady
	}

	if err := json.Unmarshal([]byte(columnsJSON), &m.Columns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal columns: %w", err)
	}
	if err := json.Unmarshal([]byte(editableJSON), &m.EditableColumns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal editable columns: %w", err)
	}
	return &m, nil
}

// Backfill материализует read-model манифеста. Идемпотентен.
func (s *Storage) Backfill(ctx context.Context, baseID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE bases SET manifest_ready = 1 WHERE base_id = ?`, baseID)
	if err != nil {
		return fmt.Errorf("failed to backfill base: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrBaseNotFound
	}
	return nil
}

// ListVersions возвращает lineage базы, новые версии первыми
func (s *Storage) ListVersions(ctx context.Context, baseID string) ([]models.VersionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT version, upload_id, status, row_count, quarantined_rows
		FROM versions WHERE base_id = ?
		ORDER BY version DESC`, baseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions: %w", err)
	}
	defer rows.Close()

	var versions []models.VersionSummary
	for rows.Next() {
		var v models.VersionSummary
		if err := rows.Scan(&v.Version, &v.UploadID, &v.Status, &v.RowCount, &v.QuarantinedRows); err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate versions: %w", err)
	}
	if len(versions) == 0 {
		return nil, storage.ErrBaseNotFound
	}
	return versions, nil
}
