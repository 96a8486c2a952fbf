package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/iudanet/boardsync/internal/syncid"
	"github.com/iudanet/boardsync/pkg/api"
)

// Hub держит websocket-подписки на уведомления об изменениях,
// сгруппированные по Sync ID. Подписка пассивна: сервер только шлет
// уведомления, входящие сообщения клиентов игнорируются.
type Hub struct {
	clients    map[string]*Client
	hashIndex  map[string]map[string]bool
	mu         sync.RWMutex
	register   chan *Client
	unregister chan *Client
	logger     *slog.Logger
	upgrader   websocket.Upgrader
	writeWait  time.Duration
	pongWait   time.Duration
	pingPeriod time.Duration
}

type Config struct {
	ReadBufferSize  int
	WriteBufferSize int
	WriteWait       time.Duration
	PongWait        time.Duration
	PingPeriod      time.Duration
}

func NewHub(cfg Config, logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		hashIndex:  make(map[string]map[string]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Sync ID в пути уже является авторизацией, origin не проверяем
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		writeWait:  cfg.WriteWait,
		pongWait:   cfg.PongWait,
		pingPeriod: cfg.PingPeriod,
	}
}

// Run обслуживает регистрацию и снятие подписок. Запускается в
// отдельной goroutine на все время жизни сервера.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.hashIndex[client.Hash] == nil {
		h.hashIndex[client.Hash] = make(map[string]bool)
	}
	h.clients[client.ID] = client
	h.hashIndex[client.Hash][client.ID] = true

	h.logger.Debug("websocket client registered", "client_id", client.ID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	delete(h.clients, client.ID)
	delete(h.hashIndex[client.Hash], client.ID)
	if len(h.hashIndex[client.Hash]) == 0 {
		delete(h.hashIndex, client.Hash)
	}
	close(client.send)

	h.logger.Debug("websocket client unregistered", "client_id", client.ID)
}

// Broadcast рассылает уведомление всем подписчикам данного Sync ID,
// кроме устройства-инициатора: оно уже знает о своей записи
func (h *Hub) Broadcast(hash string, notification api.UpdateNotification, excludeDeviceID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clientIDs, exists := h.hashIndex[hash]
	if !exists {
		return
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		h.logger.Error("failed to marshal notification", "error", err)
		return
	}

	for clientID := range clientIDs {
		client := h.clients[clientID]
		if excludeDeviceID != "" && client.DeviceID == excludeDeviceID {
			continue
		}
		select {
		case client.send <- payload:
		default:
			// Переполненный буфер означает мертвое соединение
			h.logger.Warn("websocket send buffer full, dropping client", "client_id", clientID)
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// Subscribers возвращает число подписчиков данного Sync ID
func (h *Hub) Subscribers(hash string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.hashIndex[hash])
}

// Handle обслуживает GET /api/sync/ws/{hash}: апгрейдит соединение и
// держит подписку до разрыва. Устройство-инициатор передает свой id
// query-параметром client.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request, rawHash string) {
	hash, err := syncid.Normalize(rawHash)
	if err != nil {
		http.Error(w, "invalid sync id", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		ID:       uuid.NewString(),
		Hash:     hash,
		DeviceID: r.URL.Query().Get("client"),
		conn:     conn,
		hub:      h,
		send:     make(chan []byte, 16),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}
