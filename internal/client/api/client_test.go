package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/boardsync/internal/models"
	"github.com/iudanet/boardsync/pkg/api"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		resp    api.StatusResponse
		wantErr error
	}{
		{
			name: "online with sqlite backend",
			resp: api.StatusResponse{
				Status:              "online",
				Storage:             "sqlite",
				BackendConnectivity: "connected",
			},
		},
		{
			name: "storage not configured",
			resp: api.StatusResponse{
				Status:              "error",
				Storage:             "none",
				BackendConnectivity: "unconfigured",
			},
			wantErr: ErrStorageNotConfigured,
		},
		{
			name: "backend disconnected",
			resp: api.StatusResponse{
				Status:              "error",
				Storage:             "sqlite",
				BackendConnectivity: "disconnected",
			},
			wantErr: ErrUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/sync/status", r.URL.Path)
				writeJSON(t, w, http.StatusOK, tt.resp)
			}))
			defer server.Close()

			client := NewClient(server.URL, "device-1")
			resp, err := client.Status(context.Background())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				// Ответ возвращается и при ошибке: status хочет показать детали
				require.NotNil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "online", resp.Status)
		})
	}
}

func TestStatusServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // соединение будет отвергнуто

	client := NewClient(server.URL, "device-1")
	_, err := client.Status(context.Background())
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/check/mysyncid", r.URL.Path)
		writeJSON(t, w, http.StatusOK, api.CheckResponse{Exists: true, Hash: "mysyncid"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1")
	exists, err := client.Check(context.Background(), "mysyncid")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCheckInvalidHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, api.ErrorResponse{
			Error: "Invalid sync ID format",
			Code:  api.CodeInvalidHash,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1")
	_, err := client.Check(context.Background(), "ab")
	require.ErrorIs(t, err, ErrInvalidHash)
}

func TestFetchSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(t, w, http.StatusOK, api.SyncData{
			Timestamp: 0,
			Hash:      "mysyncid",
			Data:      json.RawMessage(`{"workspaceSettings":null,"boards":[],"cards":{}}`),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1")
	snapshot, err := client.Fetch(context.Background(), "mysyncid")
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
	assert.Zero(t, snapshot.Timestamp)
}

func TestFetchPopulated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.SyncData{
			Timestamp: 4200,
			Data:      json.RawMessage(`{"boards":[{"id":"b1","updatedAt":1000,"title":"Work"}],"cards":{"b1":[{"id":"c1","updatedAt":1000}]}}`),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1")
	snapshot, err := client.Fetch(context.Background(), "mysyncid")
	require.NoError(t, err)
	assert.Equal(t, int64(4200), snapshot.Timestamp)
	require.Len(t, snapshot.Data.Boards, 1)
	assert.Equal(t, "b1", snapshot.Data.Boards[0].ID)
	require.Len(t, snapshot.Data.Cards["b1"], 1)
}

func TestFetchMalformedWorkspace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.SyncData{
			Timestamp: 4200,
			Data:      json.RawMessage(`"not an object"`),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1")
	_, err := client.Fetch(context.Background(), "mysyncid")
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	var received api.SyncData
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/data/mysyncid", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "device-1", r.Header.Get("X-Client-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeJSON(t, w, http.StatusOK, api.WriteResponse{
			Success:   true,
			Timestamp: received.Timestamp,
			Hash:      "mysyncid",
		})
	}))
	defer server.Close()

	workspace := models.EmptyWorkspace()
	workspace.Boards = []models.Entity{{
		ID:        "b1",
		UpdatedAt: 1000,
		Raw:       json.RawMessage(`{"id":"b1","updatedAt":1000,"title":"Work"}`),
	}}

	client := NewClient(server.URL, "device-1")
	resp, err := client.Write(context.Background(), "mysyncid", models.Snapshot{
		Timestamp: 5000,
		Data:      workspace,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(5000), resp.Timestamp)

	// Payload доходит до сервера без потерь
	assert.Equal(t, int64(5000), received.Timestamp)
	var sent models.Workspace
	require.NoError(t, json.Unmarshal(received.Data, &sent))
	require.Len(t, sent.Boards, 1)
	assert.JSONEq(t, `{"id":"b1","updatedAt":1000,"title":"Work"}`, string(sent.Boards[0].Raw))
}

func TestWriteRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Отказ условной записи это 200 + Success=false, не ошибка HTTP
		writeJSON(t, w, http.StatusOK, api.WriteResponse{
			Success:         false,
			Message:         "Server has newer data",
			ServerTimestamp: 9000,
			ClientTimestamp: 5000,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1")
	resp, err := client.Write(context.Background(), "mysyncid", models.Snapshot{
		Timestamp: 5000,
		Data:      models.EmptyWorkspace(),
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, int64(9000), resp.ServerTimestamp)
	assert.Equal(t, int64(5000), resp.ClientTimestamp)
}

func TestWriteStorageNotConfigured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusServiceUnavailable, api.ErrorResponse{
			Error: "Sync storage is not configured",
			Code:  api.CodeStorageNotConfigured,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1")
	_, err := client.Write(context.Background(), "mysyncid", models.Snapshot{
		Timestamp: 5000,
		Data:      models.EmptyWorkspace(),
	})
	require.ErrorIs(t, err, ErrStorageNotConfigured)
}

func TestDelete(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/sync/data/mysyncid", r.URL.Path)
		writeJSON(t, w, http.StatusOK, api.DeleteResponse{Success: true, Hash: "mysyncid"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1")
	require.NoError(t, client.Delete(context.Background(), "mysyncid"))
	assert.True(t, called)
}

func TestUnexplainedServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1")
	_, err := client.Check(context.Background(), "mysyncid")
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestWatch(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/ws/mysyncid", r.URL.Path)
		assert.Equal(t, "device-1", r.URL.Query().Get("client"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		payload, err := json.Marshal(api.UpdateNotification{
			Type:      api.NotificationTypeUpdated,
			Hash:      "mysyncid",
			Timestamp: 7000,
		})
		require.NoError(t, err)
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, payload))

		// Держим соединение открытым, пока клиент не отменит контекст
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifications := make(chan api.UpdateNotification, 1)
	client := NewClient(server.URL, "device-1")

	errCh := make(chan error, 1)
	go func() {
		errCh <- client.Watch(ctx, "mysyncid", func(n api.UpdateNotification) {
			notifications <- n
		})
	}()

	select {
	case n := <-notifications:
		assert.Equal(t, api.NotificationTypeUpdated, n.Type)
		assert.Equal(t, "mysyncid", n.Hash)
		assert.Equal(t, int64(7000), n.Timestamp)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for notification")
	}

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch to stop")
	}
}

func TestWatchURLScheme(t *testing.T) {
	client := NewClient("https://sync.example.com", "device-1")
	u, err := client.watchURL("mysyncid")
	require.NoError(t, err)
	assert.Equal(t, "wss://sync.example.com/api/sync/ws/mysyncid?client=device-1", u)

	client = NewClient("ftp://sync.example.com", "")
	_, err = client.watchURL("mysyncid")
	require.Error(t, err)
}
