package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/boardsync/internal/server/storage"
	"github.com/iudanet/boardsync/internal/syncid"
	"github.com/iudanet/boardsync/pkg/api"
)

// HeaderClientID — заголовок с id устройства-инициатора. Используется,
// чтобы не слать устройству уведомление о его собственной записи.
const HeaderClientID = "X-Client-ID"

// emptyWorkspace — sentinel payload для несуществующей записи
var emptyWorkspace = json.RawMessage(`{"workspaceSettings":null,"boards":[],"cards":{}}`)

// Notifier рассылает уведомление об обновлении подписчикам Sync ID
type Notifier interface {
	Broadcast(hash string, notification api.UpdateNotification, excludeDeviceID string)
}

// SyncHandler обслуживает data-операции протокола синхронизации.
// store может быть nil: сервер работает без настроенного хранилища и
// отвечает 503 storage_not_configured на все data-операции.
type SyncHandler struct {
	logger   *slog.Logger
	store    storage.WorkspaceStore
	notifier Notifier
	validate *validator.Validate
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, store storage.WorkspaceStore, notifier Notifier) *SyncHandler {
	return &SyncHandler{
		logger:   logger,
		store:    store,
		notifier: notifier,
		validate: validator.New(),
	}
}

// requireStore проверяет настроенность хранилища; при его отсутствии
// пишет 503 и возвращает false
func (h *SyncHandler) requireStore(w http.ResponseWriter) bool {
	if h.store == nil {
		respondError(h.logger, w, http.StatusServiceUnavailable,
			"Sync storage is not configured", api.CodeStorageNotConfigured)
		return false
	}
	return true
}

// normalizeHash разбирает hash из пути; при невалидном формате пишет
// 400 и возвращает пустую строку
func (h *SyncHandler) normalizeHash(w http.ResponseWriter, rawHash string) string {
	hash, err := syncid.Normalize(rawHash)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest,
			"Invalid sync id format", api.CodeInvalidHash)
		return ""
	}
	return hash
}

// Check обрабатывает GET /api/sync/check/{hash}: проверка существования
// Sync ID без чтения данных
func (h *SyncHandler) Check(w http.ResponseWriter, r *http.Request, rawHash string) {
	hash := h.normalizeHash(w, rawHash)
	if hash == "" {
		return
	}
	if !h.requireStore(w) {
		return
	}

	exists, err := h.store.Exists(r.Context(), hash)
	if err != nil {
		h.logger.Error("Failed to check workspace", "error", err)
		respondError(h.logger, w, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, api.CheckResponse{Exists: exists, Hash: hash})
}

// GetData обрабатывает GET /api/sync/data/{hash}. Несуществующая запись
// не ошибка: возвращается пустой sentinel с timestamp 0, по которому
// клиент выбирает bootstrap путь.
func (h *SyncHandler) GetData(w http.ResponseWriter, r *http.Request, rawHash string) {
	hash := h.normalizeHash(w, rawHash)
	if hash == "" {
		return
	}
	if !h.requireStore(w) {
		return
	}

	record, err := h.store.Get(r.Context(), hash)
	if err != nil {
		if errors.Is(err, storage.ErrWorkspaceNotFound) {
			respondJSON(h.logger, w, http.StatusOK, api.SyncData{
				Timestamp: 0,
				Hash:      hash,
				Data:      emptyWorkspace,
			})
			return
		}
		h.logger.Error("Failed to get workspace", "error", err)
		respondError(h.logger, w, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, api.SyncData{
		Timestamp: record.Timestamp,
		Hash:      hash,
		Data:      record.Payload,
	})
}

// PostData обрабатывает POST /api/sync/data/{hash}: условная запись
// snapshot. Отказ по конфликту — это не HTTP-ошибка, а валидный ответ
// 200 с success=false и обоими timestamp.
func (h *SyncHandler) PostData(w http.ResponseWriter, r *http.Request, rawHash string) {
	hash := h.normalizeHash(w, rawHash)
	if hash == "" {
		return
	}
	if !h.requireStore(w) {
		return
	}

	var data api.SyncData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if err := h.validate.Struct(data); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Missing timestamp or data", "")
		return
	}

	result, err := h.store.Put(r.Context(), &storage.WorkspaceRecord{
		Hash:      hash,
		Timestamp: data.Timestamp,
		Payload:   data.Data,
	})
	if err != nil {
		h.logger.Error("Failed to put workspace", "error", err)
		respondError(h.logger, w, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	if !result.Accepted {
		h.logger.Info("Conditional write rejected",
			"server_timestamp", result.ServerTimestamp,
			"client_timestamp", data.Timestamp)
		respondJSON(h.logger, w, http.StatusOK, api.WriteResponse{
			Success:         false,
			Message:         "Server has newer data",
			ServerTimestamp: result.ServerTimestamp,
			ClientTimestamp: data.Timestamp,
		})
		return
	}

	if h.notifier != nil {
		h.notifier.Broadcast(hash, api.UpdateNotification{
			Type:      api.NotificationTypeUpdated,
			Hash:      hash,
			Timestamp: data.Timestamp,
		}, r.Header.Get(HeaderClientID))
	}

	respondJSON(h.logger, w, http.StatusOK, api.WriteResponse{
		Success:   true,
		Timestamp: data.Timestamp,
		Hash:      hash,
	})
}

// DeleteData обрабатывает DELETE /api/sync/data/{hash}: полное удаление
// записи при отключении устройства
func (h *SyncHandler) DeleteData(w http.ResponseWriter, r *http.Request, rawHash string) {
	hash := h.normalizeHash(w, rawHash)
	if hash == "" {
		return
	}
	if !h.requireStore(w) {
		return
	}

	if err := h.store.Delete(r.Context(), hash); err != nil {
		h.logger.Error("Failed to delete workspace", "error", err)
		respondError(h.logger, w, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, api.DeleteResponse{Success: true, Hash: hash})
}
