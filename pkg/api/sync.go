package api

import "encoding/json"

// SyncData представляет одну копию workspace в протоколе синхронизации:
// версионный timestamp плюс непрозрачный payload с данными workspace.
// Data передается как есть: сервер никогда не заглядывает внутрь.
type SyncData struct {
	Timestamp int64           `json:"timestamp" validate:"required,gt=0"`
	Hash      string          `json:"hash,omitempty"`
	Data      json.RawMessage `json:"data" validate:"required"`
}

// CheckResponse представляет ответ на проверку существования Sync ID
type CheckResponse struct {
	Exists bool   `json:"exists"`
	Hash   string `json:"hash,omitempty"`
	Error  string `json:"error,omitempty"`
}

// StatusResponse представляет ответ liveness-проверки сервера
type StatusResponse struct {
	Status              string `json:"status"` // "online" или "error"
	ServerTime          int64  `json:"serverTime"`
	Version             string `json:"version"`
	Storage             string `json:"storage"`             // "sqlite" или "none"
	BackendConnectivity string `json:"backendConnectivity"` // "connected", "disconnected", "unconfigured"
}

// WriteResponse представляет ответ сервера на условную запись.
// Success=false означает, что сохраненный на сервере timestamp новее
// клиентского; клиент обязан перечитать и пересчитать merge.
type WriteResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	Timestamp       int64  `json:"timestamp,omitempty"`
	Hash            string `json:"hash,omitempty"`
	ServerTimestamp int64  `json:"serverTimestamp,omitempty"`
	ClientTimestamp int64  `json:"clientTimestamp,omitempty"`
}

// DeleteResponse представляет ответ на отключение Sync ID
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Hash    string `json:"hash,omitempty"`
}

// ErrorResponse представляет ошибку API
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Machine-readable коды для ErrorResponse.Code
const (
	CodeInvalidHash          = "invalid_hash"
	CodeStorageNotConfigured = "storage_not_configured"
)

// UpdateNotification рассылается по websocket подписчикам hash после
// успешной записи. Клиент использует её как сигнал background-sync.
type UpdateNotification struct {
	Type      string `json:"type"` // всегда "updated"
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
}

// NotificationTypeUpdated тип события об обновлении данных workspace
const NotificationTypeUpdated = "updated"
