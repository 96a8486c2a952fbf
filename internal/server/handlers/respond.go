package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/boardsync/pkg/api"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, message, code string) {
	respondJSON(logger, w, status, api.ErrorResponse{Error: message, Code: code})
}
