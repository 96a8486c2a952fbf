package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/boardsync/internal/server/storage"
	"github.com/iudanet/boardsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type broadcastCall struct {
	hash         string
	notification api.UpdateNotification
	exclude      string
}

type notifierStub struct {
	calls []broadcastCall
}

func (n *notifierStub) Broadcast(hash string, notification api.UpdateNotification, excludeDeviceID string) {
	n.calls = append(n.calls, broadcastCall{hash: hash, notification: notification, exclude: excludeDeviceID})
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCheck(t *testing.T) {
	store := &storage.WorkspaceStoreMock{
		ExistsFunc: func(ctx context.Context, hash string) (bool, error) {
			return hash == "abc123", nil
		},
	}
	h := NewSyncHandler(testLogger(), store, nil)

	t.Run("exists", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Check(rec, httptest.NewRequest(http.MethodGet, "/api/sync/check/abc123", nil), "abc123")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[api.CheckResponse](t, rec)
		assert.True(t, resp.Exists)
		assert.Equal(t, "abc123", resp.Hash)
	})

	t.Run("not exists", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Check(rec, httptest.NewRequest(http.MethodGet, "/api/sync/check/zzz999", nil), "zzz999")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[api.CheckResponse](t, rec)
		assert.False(t, resp.Exists)
	})

	t.Run("normalizes input", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Check(rec, httptest.NewRequest(http.MethodGet, "/api/sync/check/My-ID-42", nil), "My-ID-42!!")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[api.CheckResponse](t, rec)
		assert.Equal(t, "myid42", resp.Hash)
	})

	t.Run("invalid hash", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Check(rec, httptest.NewRequest(http.MethodGet, "/api/sync/check/ab", nil), "ab")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeBody[api.ErrorResponse](t, rec)
		assert.Equal(t, api.CodeInvalidHash, resp.Code)
	})
}

func TestGetData(t *testing.T) {
	payload := []byte(`{"workspaceSettings":null,"boards":[{"id":"b1","updatedAt":1000}],"cards":{}}`)
	store := &storage.WorkspaceStoreMock{
		GetFunc: func(ctx context.Context, hash string) (*storage.WorkspaceRecord, error) {
			if hash == "abc123" {
				return &storage.WorkspaceRecord{Hash: hash, Timestamp: 1000, Payload: payload}, nil
			}
			return nil, storage.ErrWorkspaceNotFound
		},
	}
	h := NewSyncHandler(testLogger(), store, nil)

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetData(rec, httptest.NewRequest(http.MethodGet, "/api/sync/data/abc123", nil), "abc123")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[api.SyncData](t, rec)
		assert.Equal(t, int64(1000), resp.Timestamp)
		assert.JSONEq(t, string(payload), string(resp.Data))
	})

	t.Run("not found returns empty sentinel", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetData(rec, httptest.NewRequest(http.MethodGet, "/api/sync/data/zzz999", nil), "zzz999")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[api.SyncData](t, rec)
		assert.Zero(t, resp.Timestamp)
		assert.JSONEq(t, `{"workspaceSettings":null,"boards":[],"cards":{}}`, string(resp.Data))
	})
}

func TestPostData(t *testing.T) {
	newRequest := func(body api.SyncData, clientID string) *http.Request {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/sync/data/abc123", bytes.NewReader(raw))
		if clientID != "" {
			req.Header.Set(HeaderClientID, clientID)
		}
		return req
	}

	t.Run("accepted write broadcasts to others", func(t *testing.T) {
		store := &storage.WorkspaceStoreMock{
			PutFunc: func(ctx context.Context, record *storage.WorkspaceRecord) (*storage.PutResult, error) {
				return &storage.PutResult{Accepted: true, ServerTimestamp: record.Timestamp}, nil
			},
		}
		notifier := &notifierStub{}
		h := NewSyncHandler(testLogger(), store, notifier)

		rec := httptest.NewRecorder()
		h.PostData(rec, newRequest(api.SyncData{Timestamp: 2000, Data: json.RawMessage(`{}`)}, "device-1"), "abc123")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[api.WriteResponse](t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, int64(2000), resp.Timestamp)

		require.Len(t, notifier.calls, 1)
		assert.Equal(t, "abc123", notifier.calls[0].hash)
		assert.Equal(t, api.NotificationTypeUpdated, notifier.calls[0].notification.Type)
		assert.Equal(t, "device-1", notifier.calls[0].exclude)
	})

	t.Run("rejected write returns both timestamps", func(t *testing.T) {
		store := &storage.WorkspaceStoreMock{
			PutFunc: func(ctx context.Context, record *storage.WorkspaceRecord) (*storage.PutResult, error) {
				return &storage.PutResult{Accepted: false, ServerTimestamp: 9000}, nil
			},
		}
		notifier := &notifierStub{}
		h := NewSyncHandler(testLogger(), store, notifier)

		rec := httptest.NewRecorder()
		h.PostData(rec, newRequest(api.SyncData{Timestamp: 2000, Data: json.RawMessage(`{}`)}, ""), "abc123")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[api.WriteResponse](t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, int64(9000), resp.ServerTimestamp)
		assert.Equal(t, int64(2000), resp.ClientTimestamp)

		// Отклоненная запись не порождает уведомлений
		assert.Empty(t, notifier.calls)
	})

	t.Run("missing timestamp rejected", func(t *testing.T) {
		h := NewSyncHandler(testLogger(), &storage.WorkspaceStoreMock{}, nil)

		rec := httptest.NewRecorder()
		h.PostData(rec, newRequest(api.SyncData{Data: json.RawMessage(`{}`)}, ""), "abc123")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body rejected", func(t *testing.T) {
		h := NewSyncHandler(testLogger(), &storage.WorkspaceStoreMock{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/sync/data/abc123", bytes.NewReader([]byte("not json")))
		rec := httptest.NewRecorder()
		h.PostData(rec, req, "abc123")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteData(t *testing.T) {
	var deletedHash string
	store := &storage.WorkspaceStoreMock{
		DeleteFunc: func(ctx context.Context, hash string) error {
			deletedHash = hash
			return nil
		},
	}
	h := NewSyncHandler(testLogger(), store, nil)

	rec := httptest.NewRecorder()
	h.DeleteData(rec, httptest.NewRequest(http.MethodDelete, "/api/sync/data/abc123", nil), "abc123")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[api.DeleteResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "abc123", deletedHash)
}

func TestStorageNotConfigured(t *testing.T) {
	h := NewSyncHandler(testLogger(), nil, nil)

	endpoints := []func(w http.ResponseWriter, r *http.Request, hash string){
		h.Check, h.GetData, h.PostData, h.DeleteData,
	}
	for _, endpoint := range endpoints {
		rec := httptest.NewRecorder()
		endpoint(rec, httptest.NewRequest(http.MethodGet, "/api/sync/data/abc123", nil), "abc123")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		resp := decodeBody[api.ErrorResponse](t, rec)
		assert.Equal(t, api.CodeStorageNotConfigured, resp.Code)
	}
}
