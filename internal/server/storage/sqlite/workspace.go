package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/boardsync/internal/server/storage"
)

// Exists сообщает о наличии записи под данным Sync ID
func (s *Storage) Exists(ctx context.Context, hash string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM workspaces WHERE hash = ?`, hash).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check workspace: %w", err)
	}
	return true, nil
}

// Get возвращает запись workspace или ErrWorkspaceNotFound
func (s *Storage) Get(ctx context.Context, hash string) (*storage.WorkspaceRecord, error) {
	record := &storage.WorkspaceRecord{}
	err := s.db.QueryRowContext(ctx,
		`SELECT hash, timestamp, payload, updated_at FROM workspaces WHERE hash = ?`, hash).
		Scan(&record.Hash, &record.Timestamp, &record.Payload, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return record, nil
}

// Put выполняет условную запись workspace. Сравнение версии и запись
// идут в одной транзакции: при хранимой версии строго новее входящей
// запись отклоняется, равная версия принимается (повторная отправка
// того же snapshot идемпотентна).
func (s *Storage) Put(ctx context.Context, record *storage.WorkspaceRecord) (result *storage.PutResult, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
		}
	}()

	var existing int64
	err = tx.QueryRowContext(ctx,
		`SELECT timestamp FROM workspaces WHERE hash = ?`, record.Hash).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = nil
	case err != nil:
		return nil, fmt.Errorf("failed to check existing workspace: %w", err)
	case existing > record.Timestamp:
		if err = tx.Rollback(); err != nil {
			return nil, fmt.Errorf("failed to rollback: %w", err)
		}
		return &storage.PutResult{Accepted: false, ServerTimestamp: existing}, nil
	}

	now := time.Now().UnixMilli()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO workspaces (hash, timestamp, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(hash) DO UPDATE SET
			timestamp = excluded.timestamp,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, record.Hash, record.Timestamp, record.Payload, now)
	if err != nil {
		return nil, fmt.Errorf("failed to put workspace: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return &storage.PutResult{Accepted: true, ServerTimestamp: record.Timestamp}, nil
}

// Delete удаляет запись workspace. Отсутствие записи не ошибка:
// повторный disconnect идемпотентен.
func (s *Storage) Delete(ctx context.Context, hash string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM workspaces WHERE hash = ?`, hash)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	return nil
}
