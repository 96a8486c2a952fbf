package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/iudanet/boardsync/pkg/api"
)

// Watch подписывается на уведомления об обновлении hash по websocket и
// вызывает onUpdate на каждое событие. Блокирует до отмены контекста
// или обрыва соединения; обрыв возвращается как ErrUnreachable, решение
// о повторном подключении за вызывающим.
func (c *Client) Watch(ctx context.Context, hash string, onUpdate func(api.UpdateNotification)) error {
	wsURL, err := c.watchURL(hash)
	if err != nil {
		return err
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return fmt.Errorf("%w: websocket dial failed: %v", ErrUnreachable, err)
	}
	defer conn.Close()

	// Закрываем соединение при отмене контекста, чтобы разблокировать ReadMessage
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: websocket read failed: %v", ErrUnreachable, err)
		}

		var notification api.UpdateNotification
		if err := json.Unmarshal(message, &notification); err != nil {
			// Неизвестные сообщения пропускаем
			continue
		}
		if notification.Type == api.NotificationTypeUpdated {
			onUpdate(notification)
		}
	}
}

// watchURL строит ws:// адрес подписки из базового http:// адреса
func (c *Client) watchURL(hash string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/api/sync/ws/" + hash
	if c.deviceID != "" {
		q := u.Query()
		q.Set("client", c.deviceID)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
