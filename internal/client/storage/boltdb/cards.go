package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/boardsync/internal/client/storage"
	"github.com/iudanet/boardsync/internal/models"
)

// SaveCard создает или обновляет карточку на доске
func (s *Storage) SaveCard(ctx context.Context, boardID string, card models.Entity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if card.ID == "" {
		return fmt.Errorf("card id is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		boards := tx.Bucket(bucketBoards)
		if boards == nil || boards.Get([]byte(boardID)) == nil {
			return storage.ErrBoardNotFound
		}
		cardsBucket := tx.Bucket(bucketCards)
		if cardsBucket == nil {
			return fmt.Errorf("cards bucket not found")
		}
		boardCards, err := cardsBucket.CreateBucketIfNotExists([]byte(boardID))
		if err != nil {
			return fmt.Errorf("failed to create cards bucket for board %s: %w", boardID, err)
		}
		if err := boardCards.Put([]byte(card.ID), card.Raw); err != nil {
			return fmt.Errorf("failed to save card: %w", err)
		}
		return s.markDirty(tx)
	})
}

// ListCards возвращает все карточки доски
func (s *Storage) ListCards(ctx context.Context, boardID string) ([]models.Entity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	cards := []models.Entity{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		cardsBucket := tx.Bucket(bucketCards)
		if cardsBucket == nil {
			return nil
		}
		boardCards := cardsBucket.Bucket([]byte(boardID))
		if boardCards == nil {
			return nil
		}
		return boardCards.ForEach(func(k, v []byte) error {
			card, err := models.NewEntity(v)
			if err != nil {
				return fmt.Errorf("failed to decode card %s: %w", k, err)
			}
			cards = append(cards, card)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// DeleteCard удаляет карточку с доски
func (s *Storage) DeleteCard(ctx context.Context, boardID, cardID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		cardsBucket := tx.Bucket(bucketCards)
		if cardsBucket == nil {
			return storage.ErrCardNotFound
		}
		boardCards := cardsBucket.Bucket([]byte(boardID))
		if boardCards == nil || boardCards.Get([]byte(cardID)) == nil {
			return storage.ErrCardNotFound
		}
		if err := boardCards.Delete([]byte(cardID)); err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}
		return s.markDirty(tx)
	})
}
