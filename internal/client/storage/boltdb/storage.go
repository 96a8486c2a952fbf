package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketWorkspace = []byte("workspace") // настройки workspace
	bucketBoards    = []byte("boards")    // доски, ключ — id доски
	bucketCards     = []byte("cards")     // вложенные buckets по id доски
	bucketMetadata  = []byte("metadata")  // sync id, таймстемпы, device id
)

// keySettings ключ настроек workspace внутри bucketWorkspace
var keySettings = []byte("settings")

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db  *bbolt.DB
	now func() time.Time
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, now: time.Now}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketWorkspace, bucketBoards, bucketCards, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// markDirty обновляет маркер "data changed at" внутри уже открытой
// транзакции. Вызывается из каждого пути записи данных workspace —
// явный контракт вместо перехвата всех записей хранилища.
func (s *Storage) markDirty(tx *bbolt.Tx) error {
	bucket := tx.Bucket(bucketMetadata)
	if bucket == nil {
		return fmt.Errorf("metadata bucket not found")
	}
	return bucket.Put([]byte(keyDataChangedAt), encodeInt64(s.now().UnixMilli()))
}
