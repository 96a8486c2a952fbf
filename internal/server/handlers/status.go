package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/boardsync/internal/server/storage"
	"github.com/iudanet/boardsync/pkg/api"
)

// StatusHandler обслуживает liveness-проверку GET /api/sync/status
type StatusHandler struct {
	logger  *slog.Logger
	store   storage.WorkspaceStore
	version string
	now     func() int64
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(logger *slog.Logger, store storage.WorkspaceStore, version string) *StatusHandler {
	return &StatusHandler{
		logger:  logger,
		store:   store,
		version: version,
		now:     func() int64 { return time.Now().UnixMilli() },
	}
}

// Status обрабатывает GET /api/sync/status. Отвечает всегда 200: даже
// без настроенного хранилища сервер жив, а его деградированное
// состояние описывается полями ответа.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp := api.StatusResponse{
		Status:     "online",
		ServerTime: h.now(),
		Version:    h.version,
	}

	if h.store == nil {
		resp.Status = "error"
		resp.Storage = "none"
		resp.BackendConnectivity = "unconfigured"
	} else if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("Storage ping failed", "error", err)
		resp.Status = "error"
		resp.Storage = "sqlite"
		resp.BackendConnectivity = "disconnected"
	} else {
		resp.Storage = "sqlite"
		resp.BackendConnectivity = "connected"
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}
