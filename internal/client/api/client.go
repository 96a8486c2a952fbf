package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/boardsync/internal/models"
	"github.com/iudanet/boardsync/pkg/api"
)

// requestTimeout ограничивает каждый запрос к удаленному хранилищу.
// По истечении запрос трактуется как Unreachable, не как тихое зависание.
const requestTimeout = 10 * time.Second

// Client представляет HTTP клиент удаленного хранилища snapshot
type Client struct {
	httpClient *http.Client
	baseURL    string
	deviceID   string
}

// NewClient создает новый API клиент. deviceID (опционально) передается
// в заголовке X-Client-ID, чтобы сервер не возвращал устройству его
// собственные уведомления об обновлении.
func NewClient(baseURL, deviceID string) *Client {
	return &Client{
		baseURL:  baseURL,
		deviceID: deviceID,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Status выполняет liveness-проверку сервера. Возвращает
// ErrStorageNotConfigured, если сервер жив, но backend не настроен,
// и ErrUnreachable, если сервер недоступен или нездоров.
func (c *Client) Status(ctx context.Context) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/sync/status", nil, &resp); err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	if resp.Storage == "none" {
		return &resp, ErrStorageNotConfigured
	}
	if resp.Status != "online" {
		return &resp, fmt.Errorf("%w: server reports status %q", ErrUnreachable, resp.Status)
	}
	return &resp, nil
}

// Check проверяет существование Sync ID на сервере. Проверка
// side-effect-free и рекомендательная: гонка между проверкой и
// последующей записью не закрыта.
func (c *Client) Check(ctx context.Context, hash string) (bool, error) {
	var resp api.CheckResponse
	url := fmt.Sprintf("/api/sync/check/%s", hash)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &resp); err != nil {
		return false, fmt.Errorf("check request failed: %w", err)
	}
	return resp.Exists, nil
}

// Fetch возвращает удаленный snapshot. Для неизвестного hash сервер
// отвечает пустым sentinel (timestamp == 0), а не ошибкой — merge
// engine опирается на этот контракт.
func (c *Client) Fetch(ctx context.Context, hash string) (models.Snapshot, error) {
	var resp api.SyncData
	url := fmt.Sprintf("/api/sync/data/%s", hash)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &resp); err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch request failed: %w", err)
	}

	snapshot := models.Snapshot{
		Timestamp: resp.Timestamp,
		Data:      models.EmptyWorkspace(),
	}
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &snapshot.Data); err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to decode remote workspace: %w", err)
		}
	}
	return snapshot, nil
}

// Write выполняет условную запись snapshot. Сервер отвергает запись с
// timestamp строго меньше сохраненного; отказ возвращается в
// WriteResponse (Success=false + serverTimestamp), а не ошибкой.
func (c *Client) Write(ctx context.Context, hash string, snapshot models.Snapshot) (*api.WriteResponse, error) {
	data, err := json.Marshal(snapshot.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workspace: %w", err)
	}

	req := api.SyncData{
		Timestamp: snapshot.Timestamp,
		Data:      data,
	}

	var resp api.WriteResponse
	url := fmt.Sprintf("/api/sync/data/%s", hash)
	if err := c.doRequest(ctx, http.MethodPost, url, req, &resp); err != nil {
		return nil, fmt.Errorf("write request failed: %w", err)
	}
	return &resp, nil
}

// Delete удаляет удаленную запись целиком. Используется при явном
// отключении Sync ID, не при синхронизации.
func (c *Client) Delete(ctx context.Context, hash string) error {
	var resp api.DeleteResponse
	url := fmt.Sprintf("/api/sync/data/%s", hash)
	if err := c.doRequest(ctx, http.MethodDelete, url, nil, &resp); err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос и разворачивает ответ в result.
// Сетевые ошибки и таймауты оборачиваются в ErrUnreachable; известные
// коды ошибок сервера мапятся на таксономию пакета.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.deviceID != "" {
		req.Header.Set("X-Client-ID", c.deviceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapErrorResponse(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// mapErrorResponse переводит не-2xx ответ в ошибку таксономии
func (c *Client) mapErrorResponse(statusCode int, body []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch errResp.Code {
		case api.CodeStorageNotConfigured:
			return ErrStorageNotConfigured
		case api.CodeInvalidHash:
			return fmt.Errorf("%w: %s", ErrInvalidHash, errResp.Error)
		}
		if errResp.Error != "" {
			return fmt.Errorf("%w: server error (%d): %s", ErrUnreachable, statusCode, errResp.Error)
		}
	}
	return fmt.Errorf("%w: request failed with status %d", ErrUnreachable, statusCode)
}
