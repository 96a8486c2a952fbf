package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	result, err := c.syncService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	if result.Bootstrap {
		c.io.Println("Local data uploaded to the cloud for the first time.")
	}
	c.io.Printf("Boards: %d\n", result.Boards)
	c.io.Printf("Cards:  %d\n", result.Cards)
	return nil
}
