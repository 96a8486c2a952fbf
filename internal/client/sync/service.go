package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	clientapi "github.com/iudanet/boardsync/internal/client/api"
	"github.com/iudanet/boardsync/internal/client/storage"
	"github.com/iudanet/boardsync/internal/merge"
	"github.com/iudanet/boardsync/internal/models"
	"github.com/iudanet/boardsync/internal/syncid"
	"github.com/iudanet/boardsync/pkg/api"
)

//go:generate moq -out client_api_mock.go . ClientAPI

// ClientAPI определяет операции удаленного хранилища, нужные оркестратору
type ClientAPI interface {
	// Status выполняет liveness-проверку сервера
	Status(ctx context.Context) (*api.StatusResponse, error)

	// Check проверяет существование Sync ID (side-effect-free)
	Check(ctx context.Context, hash string) (bool, error)

	// Fetch возвращает удаленный snapshot или пустой sentinel
	Fetch(ctx context.Context, hash string) (models.Snapshot, error)

	// Write выполняет условную запись snapshot
	Write(ctx context.Context, hash string, snapshot models.Snapshot) (*api.WriteResponse, error)

	// Delete удаляет удаленную запись целиком
	Delete(ctx context.Context, hash string) error
}

// StatusLevel уровень статусного события для слоя представления
type StatusLevel string

const (
	StatusSuccess StatusLevel = "success"
	StatusWarning StatusLevel = "warning"
	StatusError   StatusLevel = "error"
	StatusSyncing StatusLevel = "syncing"
)

// StatusFunc получает статусные события оркестратора. Каждый
// терминальный исход дает ровно одно success/warning/error событие;
// промежуточный прогресс приходит с уровнем syncing. Это единственная
// связь оркестратора со слоем представления.
type StatusFunc func(level StatusLevel, message string)

// ConfirmFunc запрашивает у пользователя подтверждение деструктивной
// операции. Возвращает true при согласии.
type ConfirmFunc func(prompt string) (bool, error)

// SyncResult contains sync operation results
type SyncResult struct {
	Bootstrap bool  // удаленных данных не было, локальные загружены как есть
	Boards    int   // количество досок в итоговом snapshot
	Cards     int   // количество карточек в итоговом snapshot
	Timestamp int64 // версия итогового snapshot
}

// Service — оркестратор синхронизации: конечный автомат
// connectivity check -> fetch -> merge-or-bootstrap -> conditional
// write-back -> local update. Зависимости инжектируются явно; никакого
// глобального состояния. На одном устройстве может идти не более одной
// синхронизации: повторный вызов отклоняется busy-guard.
type Service struct {
	apiClient ClientAPI
	snapshots storage.SnapshotStorage
	metadata  storage.MetadataStorage
	logger    *slog.Logger

	status  StatusFunc
	confirm ConfirmFunc
	now     func() int64

	mu        sync.Mutex
	isSyncing bool
}

// NewService creates a new sync service
func NewService(apiClient ClientAPI, snapshots storage.SnapshotStorage, metadata storage.MetadataStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		snapshots: snapshots,
		metadata:  metadata,
		logger:    logger,
		now:       models.NowMillis,
	}
}

// SetStatusFunc подключает получателя статусных событий
func (s *Service) SetStatusFunc(fn StatusFunc) {
	s.status = fn
}

// SetConfirmFunc подключает запрос подтверждения деструктивных операций
func (s *Service) SetConfirmFunc(fn ConfirmFunc) {
	s.confirm = fn
}

// Sync выполняет полный цикл синхронизации с удаленным хранилищем.
//
// Порядок внутри цикла жесткий: merge завершается до удаленной записи,
// удаленная запись — до перезаписи локального состояния. Сбой между
// ними оставляет удаленную копию авторитетной, а локальную — устаревшей
// но восстановимой: следующий цикл перечитает и смержит заново.
func (s *Service) Sync(ctx context.Context) (*SyncResult, error) {
	hash, err := s.metadata.GetSyncID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync id: %w", err)
	}
	if hash == "" {
		s.emit(StatusWarning, "No Sync ID set. Create or activate one first.")
		return nil, ErrNoSyncID
	}

	if !s.begin() {
		s.emit(StatusWarning, "Already syncing...")
		return nil, ErrAlreadyInProgress
	}
	defer s.end()

	s.logger.Info("Starting synchronization", "hash", hash)
	s.emit(StatusSyncing, "Checking connection...")

	if err := s.checkConnection(ctx); err != nil {
		s.emitForError(err)
		return nil, err
	}

	s.emit(StatusSyncing, "Syncing with ID: "+strings.ToUpper(hash))

	// Локальное состояние читается свежим в точке использования:
	// мутация UI, попавшая между чтением и записью, уедет со следующим
	// циклом по своему timestamp
	local, err := s.snapshots.ReadSnapshot(ctx)
	if err != nil {
		s.emit(StatusError, "Failed to read local data")
		return nil, fmt.Errorf("failed to read local snapshot: %w", err)
	}

	remote, err := s.apiClient.Fetch(ctx, hash)
	if err != nil {
		s.emitForError(err)
		return nil, err
	}

	if remote.IsEmpty() {
		return s.bootstrap(ctx, hash, local)
	}

	merged := merge.Snapshots(local, remote, s.now())

	// Смерженный snapshot пишется всегда, даже если он совпал с
	// удаленным: с этого момента он авторитетен
	writeResp, err := s.apiClient.Write(ctx, hash, merged)
	if err != nil {
		s.emitForError(err)
		return nil, err
	}
	if !writeResp.Success {
		s.logger.Warn("Remote store rejected write",
			"server_timestamp", writeResp.ServerTimestamp,
			"client_timestamp", merged.Timestamp)
		s.emit(StatusError, "Remote data changed during sync, please sync again")
		return nil, &ConflictError{
			ServerTimestamp: writeResp.ServerTimestamp,
			ClientTimestamp: merged.Timestamp,
			Message:         writeResp.Message,
		}
	}

	if err := s.snapshots.ReplaceSnapshot(ctx, merged); err != nil {
		s.emit(StatusError, "Failed to update local data")
		return nil, fmt.Errorf("failed to replace local snapshot: %w", err)
	}

	if err := s.metadata.SaveLastSyncTimestamp(ctx, s.now()); err != nil {
		// Не прерываем синхронизацию из-за ошибки сохранения маркера
		s.logger.Warn("Failed to save last sync timestamp", "error", err)
	}

	result := resultFor(merged, false)
	s.logger.Info("Synchronization completed",
		"boards", result.Boards,
		"cards", result.Cards,
		"timestamp", result.Timestamp)
	s.emit(StatusSuccess, "Merged changes")
	return result, nil
}

// bootstrap обрабатывает пустой удаленный sentinel: локальный snapshot
// загружается как есть, без merge, локальное состояние не трогается
func (s *Service) bootstrap(ctx context.Context, hash string, local models.Snapshot) (*SyncResult, error) {
	s.logger.Info("Remote store is empty, bootstrapping", "hash", hash, "timestamp", local.Timestamp)

	writeResp, err := s.apiClient.Write(ctx, hash, local)
	if err != nil {
		s.emitForError(err)
		return nil, err
	}
	if !writeResp.Success {
		// Кто-то успел записать между fetch и write
		s.emit(StatusError, "Remote data changed during sync, please sync again")
		return nil, &ConflictError{
			ServerTimestamp: writeResp.ServerTimestamp,
			ClientTimestamp: local.Timestamp,
			Message:         writeResp.Message,
		}
	}

	if err := s.metadata.SaveLastSyncTimestamp(ctx, s.now()); err != nil {
		s.logger.Warn("Failed to save last sync timestamp", "error", err)
	}

	s.emit(StatusSuccess, "Synced to cloud")
	return resultFor(local, true), nil
}

// CreateSyncID генерирует новый Sync ID и загружает под него текущие
// локальные данные. Проверка занятости рекомендательная: гонка между
// проверкой и записью не закрыта.
func (s *Service) CreateSyncID(ctx context.Context) (string, error) {
	if !s.begin() {
		s.emit(StatusWarning, "Already syncing...")
		return "", ErrAlreadyInProgress
	}
	defer s.end()

	var hash string
	for attempt := 0; attempt < 3; attempt++ {
		candidate := syncid.Generate()
		exists, err := s.apiClient.Check(ctx, candidate)
		if err != nil {
			s.emitForError(err)
			return "", err
		}
		if !exists {
			hash = candidate
			break
		}
		s.logger.Warn("Generated sync id already taken, retrying", "hash", candidate)
	}
	if hash == "" {
		s.emit(StatusError, "Failed to create new Sync ID")
		return "", ErrSyncIDTaken
	}

	if err := s.metadata.SetSyncID(ctx, hash); err != nil {
		return "", fmt.Errorf("failed to save sync id: %w", err)
	}

	local, err := s.snapshots.ReadSnapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read local snapshot: %w", err)
	}

	writeResp, err := s.apiClient.Write(ctx, hash, local)
	if err != nil || !writeResp.Success {
		// Откат: без удаленной копии свежесозданный ID бесполезен
		if clearErr := s.metadata.ClearSyncID(ctx); clearErr != nil {
			s.logger.Error("Failed to roll back sync id", "error", clearErr)
		}
		s.emit(StatusError, "Failed to create new Sync ID")
		if err != nil {
			return "", err
		}
		return "", &ConflictError{
			ServerTimestamp: writeResp.ServerTimestamp,
			ClientTimestamp: local.Timestamp,
			Message:         writeResp.Message,
		}
	}

	if err := s.metadata.SaveLastSyncTimestamp(ctx, s.now()); err != nil {
		s.logger.Warn("Failed to save last sync timestamp", "error", err)
	}

	s.emit(StatusSuccess, "Created new Sync ID: "+strings.ToUpper(hash))
	return hash, nil
}

// ActivateSyncID подключает существующий Sync ID. Это НЕ merge-safe
// путь: удаленные данные ДЕСТРУКТИВНО замещают все локальные, поэтому
// без skipConfirm операция требует явного подтверждения.
func (s *Service) ActivateSyncID(ctx context.Context, raw string, skipConfirm bool) error {
	hash, err := syncid.Normalize(raw)
	if err != nil {
		s.emit(StatusError, "Invalid Sync ID format")
		return err
	}

	if !s.begin() {
		s.emit(StatusWarning, "Already syncing...")
		return ErrAlreadyInProgress
	}
	defer s.end()

	exists, err := s.apiClient.Check(ctx, hash)
	if err != nil {
		s.emitForError(err)
		return err
	}
	if !exists {
		s.emit(StatusError, "Sync ID not found")
		return ErrSyncIDNotFound
	}

	if !skipConfirm {
		ok, err := s.requestConfirm("Activating this Sync ID will REPLACE all your local data with data from the cloud. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			return ErrConfirmationDeclined
		}
	}

	if err := s.metadata.SetSyncID(ctx, hash); err != nil {
		return fmt.Errorf("failed to save sync id: %w", err)
	}

	remote, err := s.apiClient.Fetch(ctx, hash)
	if err != nil {
		s.emitForError(err)
		return err
	}

	if remote.IsEmpty() {
		// Данных еще нет, но ID валиден: локальные данные остаются,
		// следующий sync загрузит их по bootstrap пути
		s.emit(StatusSuccess, "Activated empty Sync ID: "+strings.ToUpper(hash))
		return nil
	}

	if err := s.snapshots.ReplaceSnapshot(ctx, remote); err != nil {
		s.emit(StatusError, "Failed to replace local data")
		return fmt.Errorf("failed to replace local snapshot: %w", err)
	}
	if err := s.metadata.SaveLastSyncTimestamp(ctx, s.now()); err != nil {
		s.logger.Warn("Failed to save last sync timestamp", "error", err)
	}

	s.emit(StatusSuccess, "Activated Sync ID: "+strings.ToUpper(hash))
	return nil
}

// Disconnect удаляет удаленную копию workspace и забывает Sync ID.
// Локальные данные остаются на устройстве.
func (s *Service) Disconnect(ctx context.Context, skipConfirm bool) error {
	hash, err := s.metadata.GetSyncID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync id: %w", err)
	}
	if hash == "" {
		return ErrNoSyncID
	}

	if !skipConfirm {
		ok, err := s.requestConfirm("Disconnecting will DELETE the cloud copy for this Sync ID. Local data stays on this device. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			return ErrConfirmationDeclined
		}
	}

	if err := s.apiClient.Delete(ctx, hash); err != nil {
		s.emitForError(err)
		return err
	}

	if err := s.metadata.ClearSyncID(ctx); err != nil {
		return fmt.Errorf("failed to clear sync id: %w", err)
	}

	s.emit(StatusSuccess, "Disconnected Sync ID: "+strings.ToUpper(hash))
	return nil
}

// checkConnection выполняет liveness-пробу перед циклом синхронизации
func (s *Service) checkConnection(ctx context.Context) error {
	_, err := s.apiClient.Status(ctx)
	return err
}

// begin занимает busy-guard. Возвращает false, если синхронизация уже идет.
func (s *Service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isSyncing {
		return false
	}
	s.isSyncing = true
	return true
}

func (s *Service) end() {
	s.mu.Lock()
	s.isSyncing = false
	s.mu.Unlock()
}

func (s *Service) emit(level StatusLevel, message string) {
	if s.status != nil {
		s.status(level, message)
	}
}

// emitForError переводит ошибку удаленного хранилища в одно
// терминальное статусное событие
func (s *Service) emitForError(err error) {
	switch {
	case errors.Is(err, clientapi.ErrStorageNotConfigured):
		s.emit(StatusWarning, "Sync storage is not configured on the server")
	case errors.Is(err, clientapi.ErrUnreachable):
		s.emit(StatusError, "Server offline")
	default:
		s.emit(StatusError, "Sync failed: "+err.Error())
	}
}

func (s *Service) requestConfirm(prompt string) (bool, error) {
	if s.confirm == nil {
		return false, fmt.Errorf("confirmation required but no confirmer configured")
	}
	return s.confirm(prompt)
}

func resultFor(snapshot models.Snapshot, bootstrap bool) *SyncResult {
	cards := 0
	for _, boardCards := range snapshot.Data.Cards {
		cards += len(boardCards)
	}
	return &SyncResult{
		Bootstrap: bootstrap,
		Boards:    len(snapshot.Data.Boards),
		Cards:     cards,
		Timestamp: snapshot.Timestamp,
	}
}
