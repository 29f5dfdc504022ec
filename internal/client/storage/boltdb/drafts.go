package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/rowfix/internal/client/storage"
)

// draftKey строит ключ черновика: "<base_id>/<row_id>"
// Префикс base_id позволяет обходить черновики одной базы курсором
func draftKey(baseID, rowID string) []byte {
	return []byte(baseID + "/" + rowID)
}

// draftPrefix префикс всех ключей черновиков одной базы
func draftPrefix(baseID string) []byte {
	return []byte(baseID + "/")
}

// SaveDraft stores or updates the draft for one row
func (s *Storage) SaveDraft(ctx context.Context, draft *storage.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return storage.ErrStorageClosed
		}
		return bucket.Put(draftKey(draft.BaseID, draft.RowID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

// ListDrafts returns all drafts for the given base id
func (s *Storage) ListDrafts(ctx context.Context, baseID string) ([]*storage.Draft, error) {
	var drafts []*storage.Draft

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		prefix := draftPrefix(baseID)
		c := bucket.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var draft storage.Draft
			if err := json.Unmarshal(v, &draft); err != nil {
				return fmt.Errorf("failed to unmarshal draft %q: %w", k, err)
			}
			drafts = append(drafts, &draft)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	return drafts, nil
}

// DeleteDraft removes the draft for one row
func (s *Storage) DeleteDraft(ctx context.Context, baseID, rowID string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		key := draftKey(baseID, rowID)
		if bucket.Get(key) == nil {
			return storage.ErrDraftNotFound
		}
		return bucket.Delete(key)
	})
	if err != nil {
		if err == storage.ErrDraftNotFound {
			return err
		}
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}

// ClearDrafts removes all drafts for the given base id
func (s *Storage) ClearDrafts(ctx context.Context, baseID string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		prefix := draftPrefix(baseID)
		c := bucket.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear drafts: %w", err)
	}

	return nil
}
