package sync

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSyncID означает, что Sync ID не установлен; синхронизация
	// не делает ни одного сетевого вызова
	ErrNoSyncID = errors.New("no sync id set")

	// ErrAlreadyInProgress — busy-guard оркестратора: параллельный
	// вызов не ставится в очередь, а отклоняется. Это не сбой.
	ErrAlreadyInProgress = errors.New("sync already in progress")

	// ErrSyncIDNotFound означает, что валидный Sync ID неизвестен серверу
	ErrSyncIDNotFound = errors.New("sync id not found on server")

	// ErrSyncIDTaken означает, что не удалось подобрать свободный Sync ID
	ErrSyncIDTaken = errors.New("could not find a free sync id")

	// ErrConfirmationDeclined означает, что пользователь не подтвердил
	// деструктивную операцию
	ErrConfirmationDeclined = errors.New("operation not confirmed")
)

// ConflictError означает отказ условной записи: удаленная копия ушла
// вперед во время синхронизации. Локальное состояние не тронуто;
// вызывающий должен заново запустить sync (повторный fetch + merge).
type ConflictError struct {
	ServerTimestamp int64
	ClientTimestamp int64
	Message         string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("sync conflict: %s (server=%d, client=%d)", e.Message, e.ServerTimestamp, e.ClientTimestamp)
	}
	return fmt.Sprintf("sync conflict: remote advanced concurrently (server=%d, client=%d)", e.ServerTimestamp, e.ClientTimestamp)
}
