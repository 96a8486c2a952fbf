package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/boardsync/internal/client/storage"
)

const (
	keySyncID            = "sync_id"
	keyLastSyncTimestamp = "last_sync_timestamp"
	keyDataChangedAt     = "data_changed_at"
	keyDeviceID          = "device_id"
)

// GetSyncID возвращает установленный Sync ID или "" если его нет
func (s *Storage) GetSyncID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var id string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if v := bucket.Get([]byte(keySyncID)); v != nil {
			id = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get sync id: %w", err)
	}
	return id, nil
}

// SetSyncID сохраняет нормализованный Sync ID
func (s *Storage) SetSyncID(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if err := bucket.Put([]byte(keySyncID), []byte(id)); err != nil {
			return fmt.Errorf("failed to save sync id: %w", err)
		}
		return nil
	})
}

// ClearSyncID удаляет Sync ID вместе с timestamp последней
// синхронизации: без ID история синхронизаций не имеет смысла
func (s *Storage) ClearSyncID(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if err := bucket.Delete([]byte(keySyncID)); err != nil {
			return fmt.Errorf("failed to delete sync id: %w", err)
		}
		if err := bucket.Delete([]byte(keyLastSyncTimestamp)); err != nil {
			return fmt.Errorf("failed to delete last sync timestamp: %w", err)
		}
		return nil
	})
}

// SaveLastSyncTimestamp saves the timestamp of the last successful sync
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if err := bucket.Put([]byte(keyLastSyncTimestamp), encodeInt64(timestamp)); err != nil {
			return fmt.Errorf("failed to save last sync timestamp: %w", err)
		}
		return nil
	})
}

// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	return s.getInt64Key(keyLastSyncTimestamp)
}

// GetDataChangedAt возвращает маркер последнего локального изменения
// данных или 0, если данные еще не менялись
func (s *Storage) GetDataChangedAt(ctx context.Context) (int64, error) {
	return s.getInt64Key(keyDataChangedAt)
}

// GetDeviceID возвращает стабильный идентификатор устройства, создавая
// его при первом обращении. Используется, чтобы сервер не присылал
// устройству его собственные уведомления об обновлении.
func (s *Storage) GetDeviceID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var id string
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if v := bucket.Get([]byte(keyDeviceID)); v != nil {
			id = string(v)
			return nil
		}
		id = uuid.New().String()
		return bucket.Put([]byte(keyDeviceID), []byte(id))
	})
	if err != nil {
		return "", fmt.Errorf("failed to get device id: %w", err)
	}
	return id, nil
}

func (s *Storage) getInt64Key(key string) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var value int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if v := bucket.Get([]byte(key)); v != nil {
			value = decodeInt64(v)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// encodeInt64 конвертирует int64 в bytes (big endian)
func encodeInt64(v int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v))
	return buf
}

// decodeInt64 конвертирует bytes обратно в int64
func decodeInt64(buf []byte) int64 {
	if len(buf) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(buf))
}
