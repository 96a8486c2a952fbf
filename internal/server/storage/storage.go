package storage

import (
	"context"
	"errors"
)

// ErrWorkspaceNotFound возвращается, когда записи под данным Sync ID нет
var ErrWorkspaceNotFound = errors.New("workspace not found")

// WorkspaceRecord — хранимая запись workspace. Payload — непрозрачный
// JSON содержимого workspace, сервер его не разбирает и не валидирует.
type WorkspaceRecord struct {
	Hash      string
	Timestamp int64 // версия snapshot, мс epoch
	Payload   []byte
	UpdatedAt int64 // момент последней записи на сервере, мс epoch
}

// PutResult — исход условной записи
type PutResult struct {
	Accepted        bool
	ServerTimestamp int64 // версия на сервере; при отказе — конфликтующая
}

//go:generate moq -out store_mock.go . WorkspaceStore

// WorkspaceStore определяет операции серверного хранилища workspace.
// Конкурентная безопасность условной записи лежит на реализации: Put
// сравнивает и пишет атомарно.
type WorkspaceStore interface {
	// Exists сообщает о наличии записи без чтения payload
	Exists(ctx context.Context, hash string) (bool, error)

	// Get возвращает запись или ErrWorkspaceNotFound
	Get(ctx context.Context, hash string) (*WorkspaceRecord, error)

	// Put выполняет условную запись: отклоняет record, если хранимая
	// версия строго новее record.Timestamp
	Put(ctx context.Context, record *WorkspaceRecord) (*PutResult, error)

	// Delete удаляет запись; отсутствие записи не ошибка
	Delete(ctx context.Context, hash string) error

	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error

	// Close закрывает хранилище
	Close() error
}
