package storage

import (
	"context"

	"github.com/iudanet/boardsync/internal/models"
)

//go:generate moq -out snapshots_mock.go . SnapshotStorage

// SnapshotStorage defines interface for reading and replacing the full
// local workspace state
type SnapshotStorage interface {
	// ReadSnapshot собирает полное локальное состояние: настройки
	// workspace, список досок и карточки каждой доски. Timestamp
	// snapshot — маркер "data changed at" или, если его нет, текущее
	// время.
	ReadSnapshot(ctx context.Context) (models.Snapshot, error)

	// ReplaceSnapshot атомарно ЗАМЕНЯЕТ все локальные данные workspace
	// содержимым snapshot. Сначала удаляется весь namespace (настройки,
	// все доски и карточки), потом пишется новое содержимое — иначе
	// сущности, удаленные на другой стороне, остались бы сиротами.
	// Операция деструктивна; вызывать только с уже смерженным или
	// доверенным snapshot.
	ReplaceSnapshot(ctx context.Context, snapshot models.Snapshot) error
}

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for sync bookkeeping on the client
type MetadataStorage interface {
	// GetSyncID возвращает установленный Sync ID или "" если его нет
	GetSyncID(ctx context.Context) (string, error)

	// SetSyncID сохраняет нормализованный Sync ID
	SetSyncID(ctx context.Context, id string) error

	// ClearSyncID удаляет Sync ID и timestamp последней синхронизации
	ClearSyncID(ctx context.Context) error

	// SaveLastSyncTimestamp saves the timestamp of the last successful sync
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
	// Returns 0 if no sync has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)

	// GetDataChangedAt возвращает маркер последнего локального изменения
	// данных (мс epoch) или 0
	GetDataChangedAt(ctx context.Context) (int64, error)

	// GetDeviceID возвращает стабильный идентификатор устройства,
	// создавая его при первом обращении
	GetDeviceID(ctx context.Context) (string, error)
}
