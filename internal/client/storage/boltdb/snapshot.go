package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/boardsync/internal/client/storage"
	"github.com/iudanet/boardsync/internal/models"
)

// ReadSnapshot собирает полное локальное состояние workspace в один
// snapshot: настройки, все доски и карточки каждой доски. Timestamp —
// маркер "data changed at"; если данные еще не менялись, берется
// текущее время.
func (s *Storage) ReadSnapshot(ctx context.Context) (models.Snapshot, error) {
	if s.db == nil {
		return models.Snapshot{}, storage.ErrStorageClosed
	}

	snapshot := models.Snapshot{Data: models.EmptyWorkspace()}

	err := s.db.View(func(tx *bbolt.Tx) error {
		// Настройки workspace
		if wb := tx.Bucket(bucketWorkspace); wb != nil {
			if raw := wb.Get(keySettings); raw != nil {
				var settings models.Settings
				if err := settings.UnmarshalJSON(raw); err != nil {
					return fmt.Errorf("failed to decode settings: %w", err)
				}
				snapshot.Data.Settings = &settings
			}
		}

		// Доски и карточки. bbolt отдает доски в порядке ключей;
		// id досок выведены из времени создания, так что порядок
		// близок к порядку появления (семантики он не несет).
		boardsBucket := tx.Bucket(bucketBoards)
		cardsBucket := tx.Bucket(bucketCards)
		if boardsBucket == nil {
			return nil
		}

		return boardsBucket.ForEach(func(k, v []byte) error {
			board, err := models.NewEntity(v)
			if err != nil {
				return fmt.Errorf("failed to decode board %s: %w", k, err)
			}
			snapshot.Data.Boards = append(snapshot.Data.Boards, board)

			cards := []models.Entity{}
			if cardsBucket != nil {
				if boardCards := cardsBucket.Bucket(k); boardCards != nil {
					err := boardCards.ForEach(func(ck, cv []byte) error {
						card, err := models.NewEntity(cv)
						if err != nil {
							return fmt.Errorf("failed to decode card %s: %w", ck, err)
						}
						cards = append(cards, card)
						return nil
					})
					if err != nil {
						return err
					}
				}
			}
			snapshot.Data.Cards[board.ID] = cards
			return nil
		})
	})
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	changedAt, err := s.GetDataChangedAt(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	if changedAt == 0 {
		changedAt = s.now().UnixMilli()
	}
	snapshot.Timestamp = changedAt

	return snapshot, nil
}

// ReplaceSnapshot атомарно замещает все данные workspace содержимым
// snapshot. Namespace целиком очищается до записи: наивная перезапись
// по ключам оставила бы локально доски и карточки, удаленные на другой
// стороне. Настройки/sync-метаданные за пределами namespace не
// трогаются, маркер изменения данных обновляется.
func (s *Storage) ReplaceSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Полная очистка namespace
		for _, name := range [][]byte{bucketWorkspace, bucketBoards, bucketCards} {
			if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
				return fmt.Errorf("failed to delete %s bucket: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate %s bucket: %w", name, err)
			}
		}

		// Настройки
		if snapshot.Data.Settings != nil && len(snapshot.Data.Settings.Raw) > 0 {
			if err := tx.Bucket(bucketWorkspace).Put(keySettings, snapshot.Data.Settings.Raw); err != nil {
				return fmt.Errorf("failed to write settings: %w", err)
			}
		}

		// Доски
		boardsBucket := tx.Bucket(bucketBoards)
		for _, board := range snapshot.Data.Boards {
			if board.ID == "" {
				continue
			}
			if err := boardsBucket.Put([]byte(board.ID), board.Raw); err != nil {
				return fmt.Errorf("failed to write board %s: %w", board.ID, err)
			}
		}

		// Карточки — все ключи карты, включая сиротские коллекции
		cardsBucket := tx.Bucket(bucketCards)
		for boardID, cards := range snapshot.Data.Cards {
			boardCards, err := cardsBucket.CreateBucketIfNotExists([]byte(boardID))
			if err != nil {
				return fmt.Errorf("failed to create cards bucket for board %s: %w", boardID, err)
			}
			for _, card := range cards {
				if card.ID == "" {
					continue
				}
				if err := boardCards.Put([]byte(card.ID), card.Raw); err != nil {
					return fmt.Errorf("failed to write card %s: %w", card.ID, err)
				}
			}
		}

		return s.markDirty(tx)
	})
	if err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
