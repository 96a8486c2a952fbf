package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/boardsync/pkg/api"
)

func newTestHub() *Hub {
	return NewHub(Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		WriteWait:       time.Second,
		PongWait:        time.Second,
		PingPeriod:      500 * time.Millisecond,
	}, slog.New(slog.DiscardHandler))
}

func TestBroadcastExcludesOriginator(t *testing.T) {
	hub := newTestHub()

	originator := &Client{ID: "c1", Hash: "mysyncid", DeviceID: "device-1", send: make(chan []byte, 1)}
	other := &Client{ID: "c2", Hash: "mysyncid", DeviceID: "device-2", send: make(chan []byte, 1)}
	stranger := &Client{ID: "c3", Hash: "othersync", DeviceID: "device-3", send: make(chan []byte, 1)}
	hub.addClient(originator)
	hub.addClient(other)
	hub.addClient(stranger)

	hub.Broadcast("mysyncid", api.UpdateNotification{
		Type:      api.NotificationTypeUpdated,
		Hash:      "mysyncid",
		Timestamp: 7000,
	}, "device-1")

	select {
	case payload := <-other.send:
		var n api.UpdateNotification
		require.NoError(t, json.Unmarshal(payload, &n))
		assert.Equal(t, int64(7000), n.Timestamp)
	default:
		t.Fatal("subscriber did not receive notification")
	}

	assert.Empty(t, originator.send, "originator must not receive its own update")
	assert.Empty(t, stranger.send, "other sync id must not receive notification")
}

func TestRemoveClientPrunesIndex(t *testing.T) {
	hub := newTestHub()

	c1 := &Client{ID: "c1", Hash: "mysyncid", send: make(chan []byte, 1)}
	c2 := &Client{ID: "c2", Hash: "mysyncid", send: make(chan []byte, 1)}
	hub.addClient(c1)
	hub.addClient(c2)
	require.Equal(t, 2, hub.Subscribers("mysyncid"))

	hub.removeClient(c1)
	assert.Equal(t, 1, hub.Subscribers("mysyncid"))
	// Повторное снятие того же клиента безопасно
	hub.removeClient(c1)

	hub.removeClient(c2)
	assert.Zero(t, hub.Subscribers("mysyncid"))
	assert.Empty(t, hub.hashIndex)
}

func TestHandleRejectsInvalidHash(t *testing.T) {
	hub := newTestHub()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sync/ws/ab", nil)

	hub.Handle(rec, req, "ab")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSubscribesAndDelivers(t *testing.T) {
	hub := newTestHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Handle(w, r, "My-Sync-ID") // нормализуется в mysyncid
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/?client=device-2"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.Subscribers("mysyncid") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast("mysyncid", api.UpdateNotification{
		Type:      api.NotificationTypeUpdated,
		Hash:      "mysyncid",
		Timestamp: 7000,
	}, "device-1")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var n api.UpdateNotification
	require.NoError(t, json.Unmarshal(payload, &n))
	assert.Equal(t, api.NotificationTypeUpdated, n.Type)
	assert.Equal(t, "mysyncid", n.Hash)
}
