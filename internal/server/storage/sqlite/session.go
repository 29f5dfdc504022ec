package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/rowfix/internal/models"
	"github.com/iudanet/rowfix/internal/server/storage"
	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

// CreateSession открывает сессию редактирования над базой.
// Стартовый session ETag наследуется от текущего ETag датасета.
func (s *Storage) CreateSession(ctx context.Context, baseID string) (*models.Session, error) {
	manifest, err := s.GetManifest(ctx, baseID)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:     uuid.NewString(),
		BaseID: baseID,
		ETag:   manifest.ETag,
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (session_id, base_id, etag)
		VALUES (?, ?, ?)`,
		session.ID, session.BaseID, session.ETag,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}
	return session, nil
}

// ApplyEdits применяет батч правок под concurrency-тегом сессии.
// Несовпадение if_match_etag отклоняет батч целиком; попадания в
// нередактируемые колонки и неизвестные строки копятся в rejected.
func (s *Storage) ApplyEdits(ctx context.Context, baseID, sessionID, ifMatchETag string, edits []pkgapi.EditEntry) (*storage.EditOutcome, error) {
	manifest, err := s.GetManifest(ctx, baseID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var currentETag string
	err = tx.QueryRowContext(ctx,
		`SELECT etag FROM sessions WHERE session_id = ? AND base_id = ?`,
		sessionID, baseID,
	).Scan(&currentETag)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if ifMatchETag != currentETag {
		return nil, storage.ErrStaleETag
	}

	outcome := &storage.EditOutcome{}
	for _, edit := range edits {
		var dataJSON string
		err = tx.QueryRowContext(ctx,
			`SELECT data FROM base_rows WHERE base_id = ? AND row_id = ?`,
			baseID, edit.RowID,
		).Scan(&dataJSON)
		if errors.Is(err, sql.ErrNoRows) {
			outcome.Rejected = append(outcome.Rejected, pkgapi.RejectedEdit{
				RowID: edit.RowID, Reason: "row not found",
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query row %s: %w", edit.RowID, err)
		}

		var values map[string]string
		if err := json.Unmarshal([]byte(dataJSON), &values); err != nil {
			return nil, fmt.Errorf("failed to unmarshal row %s: %w", edit.RowID, err)
		}

		rejected := false
		for column, value := range edit.Cells {
			if !manifest.IsEditable(column) {
				outcome.Rejected = append(outcome.Rejected, pkgapi.RejectedEdit{
					RowID: edit.RowID, Column: column, Reason: "column is not editable",
				})
				rejected = true
				continue
			}
			values[column] = value
		}
		if rejected {
			continue
		}

		updated, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal row %s: %w", edit.RowID, err)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE base_rows SET data = ? WHERE base_id = ? AND row_id = ?`,
			string(updated), baseID, edit.RowID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update row %s: %w", edit.RowID, err)
		}
		outcome.Accepted++
	}

	// Продвигаем session ETag на каждом принятом батче
	outcome.NextETag = uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`UPDATE sessions SET etag = ? WHERE session_id = ?`,
		outcome.NextETag, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to advance session etag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return outcome, nil
}
