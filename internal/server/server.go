package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/boardsync/internal/server/config"
	"github.com/iudanet/boardsync/internal/server/handlers"
	"github.com/iudanet/boardsync/internal/server/middleware"
	"github.com/iudanet/boardsync/internal/server/storage"
	"github.com/iudanet/boardsync/internal/server/ws"
)

// NewRouter собирает маршруты API синхронизации с цепочкой middleware.
// store может быть nil: data-маршруты тогда отвечают 503.
func NewRouter(cfg *config.Config, logger *slog.Logger, store storage.WorkspaceStore, hub *ws.Hub, version string) *mux.Router {
	syncHandler := handlers.NewSyncHandler(logger, store, hub)
	statusHandler := handlers.NewStatusHandler(logger, store, version)

	r := mux.NewRouter()

	apiRouter := r.PathPrefix("/api/sync").Subrouter()
	apiRouter.HandleFunc("/status", statusHandler.Status).Methods(http.MethodGet)
	apiRouter.HandleFunc("/check/{hash}", withHash(syncHandler.Check)).Methods(http.MethodGet)
	apiRouter.HandleFunc("/data/{hash}", withHash(syncHandler.GetData)).Methods(http.MethodGet)
	apiRouter.HandleFunc("/data/{hash}", withHash(syncHandler.PostData)).Methods(http.MethodPost)
	apiRouter.HandleFunc("/data/{hash}", withHash(syncHandler.DeleteData)).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/ws/{hash}", func(w http.ResponseWriter, r *http.Request) {
		hub.Handle(w, r, mux.Vars(r)["hash"])
	}).Methods(http.MethodGet)

	// OPTIONS обслуживается целиком в CORS middleware
	r.PathPrefix("/api/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RequestsPerMinute, time.Minute, logger))
	}

	return r
}

// withHash извлекает path-переменную hash для обработчиков синхронизации
func withHash(handler func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler(w, r, mux.Vars(r)["hash"])
	}
}

// New создает настроенный http.Server
func New(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
