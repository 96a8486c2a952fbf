package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/boardsync/internal/client/storage"
	"github.com/iudanet/boardsync/internal/models"
)

// CRUD досок и карточек для слоя представления (CLI). Каждая мутация
// обновляет маркер "data changed at" в той же транзакции.

// SaveBoard создает или обновляет доску
func (s *Storage) SaveBoard(ctx context.Context, board models.Entity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if board.ID == "" {
		return fmt.Errorf("board id is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBoards)
		if bucket == nil {
			return fmt.Errorf("boards bucket not found")
		}
		if err := bucket.Put([]byte(board.ID), board.Raw); err != nil {
			return fmt.Errorf("failed to save board: %w", err)
		}
		return s.markDirty(tx)
	})
}

// GetBoard возвращает доску по id
func (s *Storage) GetBoard(ctx context.Context, id string) (models.Entity, error) {
	if s.db == nil {
		return models.Entity{}, storage.ErrStorageClosed
	}

	var board models.Entity
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBoards)
		if bucket == nil {
			return storage.ErrBoardNotFound
		}
		raw := bucket.Get([]byte(id))
		if raw == nil {
			return storage.ErrBoardNotFound
		}
		var err error
		board, err = models.NewEntity(raw)
		return err
	})
	if err != nil {
		return models.Entity{}, err
	}
	return board, nil
}

// ListBoards возвращает все доски
func (s *Storage) ListBoards(ctx context.Context) ([]models.Entity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	boards := []models.Entity{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBoards)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			board, err := models.NewEntity(v)
			if err != nil {
				return fmt.Errorf("failed to decode board %s: %w", k, err)
			}
			boards = append(boards, board)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// DeleteBoard удаляет доску вместе с её коллекцией карточек
func (s *Storage) DeleteBoard(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBoards)
		if bucket == nil {
			return storage.ErrBoardNotFound
		}
		if bucket.Get([]byte(id)) == nil {
			return storage.ErrBoardNotFound
		}
		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete board: %w", err)
		}
		if cardsBucket := tx.Bucket(bucketCards); cardsBucket != nil {
			if err := cardsBucket.DeleteBucket([]byte(id)); err != nil && err != bbolt.ErrBucketNotFound {
				return fmt.Errorf("failed to delete board cards: %w", err)
			}
		}
		return s.markDirty(tx)
	})
}

// SaveSettings сохраняет настройки workspace
func (s *Storage) SaveSettings(ctx context.Context, settings models.Settings) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWorkspace)
		if bucket == nil {
			return fmt.Errorf("workspace bucket not found")
		}
		if err := bucket.Put(keySettings, settings.Raw); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		return s.markDirty(tx)
	})
}
