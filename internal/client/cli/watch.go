package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/boardsync/internal/client/sync"
	"github.com/iudanet/boardsync/pkg/api"
)

// runWatch держит websocket-подписку на уведомления об изменениях и
// запускает цикл синхронизации на каждое. Завершается по ctx (Ctrl+C)
// или при обрыве соединения.
func (c *Cli) runWatch(ctx context.Context) error {
	hash, err := c.store.GetSyncID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync id: %w", err)
	}
	if hash == "" {
		return sync.ErrNoSyncID
	}

	// Начальная синхронизация, чтобы не ждать первого уведомления
	if _, err := c.syncService.Sync(ctx); err != nil && !errors.Is(err, sync.ErrAlreadyInProgress) {
		return err
	}

	c.io.Println()
	c.io.Println("Watching for changes... Press Ctrl+C to stop.")

	err = c.apiClient.Watch(ctx, hash, func(n api.UpdateNotification) {
		c.io.Printf("… Remote change detected (timestamp %d)\n", n.Timestamp)
		if _, err := c.syncService.Sync(ctx); err != nil && !errors.Is(err, sync.ErrAlreadyInProgress) {
			c.io.Printf("✗ Sync failed: %v\n", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
