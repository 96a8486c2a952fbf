package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/boardsync/internal/client/sync"
)

var connectUsage = "Usage: boardsync connect <new|sync-id>"

func (c *Cli) runConnect(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing argument. %s", connectUsage)
	}

	if args[0] == "new" {
		hash, err := c.syncService.CreateSyncID(ctx)
		if err != nil {
			return fmt.Errorf("failed to create sync id: %w", err)
		}
		c.io.Println()
		c.io.Printf("Share this Sync ID with your other devices: %s\n", strings.ToUpper(hash))
		return nil
	}

	err := c.syncService.ActivateSyncID(ctx, args[0], c.skipConfirm)
	if err != nil {
		if err == sync.ErrConfirmationDeclined {
			c.io.Println("Cancelled.")
			return nil
		}
		return fmt.Errorf("failed to activate sync id: %w", err)
	}
	return nil
}

func (c *Cli) runDisconnect(ctx context.Context) error {
	err := c.syncService.Disconnect(ctx, c.skipConfirm)
	if err != nil {
		if err == sync.ErrConfirmationDeclined {
			c.io.Println("Cancelled.")
			return nil
		}
		if err == sync.ErrNoSyncID {
			c.io.Println("No Sync ID set, nothing to disconnect.")
			return nil
		}
		return fmt.Errorf("failed to disconnect: %w", err)
	}
	c.io.Println("Local data stays on this device.")
	return nil
}
