package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/boardsync/internal/client/api"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	hash, err := c.store.GetSyncID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync id: %w", err)
	}

	if hash == "" {
		c.io.Println("Sync: not connected")
		c.io.Println()
		c.io.Println("Run 'boardsync connect new' to enable cross-device sync.")
		return nil
	}

	c.io.Printf("Sync ID: %s\n", strings.ToUpper(hash))

	lastSync, err := c.store.GetLastSyncTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync timestamp: %w", err)
	}
	c.io.Printf("Last sync: %s\n", formatLastSyncTime(lastSync, time.Now()))

	boards, err := c.store.ListBoards(ctx)
	if err != nil {
		return fmt.Errorf("failed to list boards: %w", err)
	}
	c.io.Printf("Local boards: %d\n", len(boards))

	// Доступность сервера показываем как часть статуса, но ее
	// отсутствие не делает команду ошибочной
	c.io.Println()
	status, err := c.apiClient.Status(ctx)
	switch {
	case err == nil:
		c.io.Printf("Server: online (storage: %s)\n", status.Storage)
	case errors.Is(err, api.ErrStorageNotConfigured):
		c.io.Println("Server: online, but sync storage is not configured")
	default:
		c.io.Println("Server: offline")
	}

	return nil
}

// formatLastSyncTime форматирует давность последней синхронизации в
// человекочитаемый вид
func formatLastSyncTime(timestampMillis int64, now time.Time) string {
	if timestampMillis == 0 {
		return "Never synced"
	}

	elapsed := now.Sub(time.UnixMilli(timestampMillis))
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		minutes := int(elapsed.Minutes())
		return fmt.Sprintf("%d minute(s) ago", minutes)
	case elapsed < 24*time.Hour:
		hours := int(elapsed.Hours())
		return fmt.Sprintf("%d hour(s) ago", hours)
	default:
		days := int(elapsed.Hours() / 24)
		return fmt.Sprintf("%d day(s) ago", days)
	}
}
