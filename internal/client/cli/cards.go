package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/iudanet/boardsync/internal/client/storage"
	"github.com/iudanet/boardsync/internal/models"
)

var cardUsage = "Usage: boardsync card <add|list|delete> --board <id> [flags]"

func (c *Cli) runCard(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", cardUsage)
	}

	switch args[0] {
	case "add":
		return c.runCardAdd(ctx, args[1:])
	case "list":
		return c.runCardList(ctx, args[1:])
	case "delete":
		return c.runCardDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], cardUsage)
	}
}

func (c *Cli) runCardAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("card add", flag.ContinueOnError)
	boardID := fs.String("board", "", "board id (required)")
	title := fs.String("title", "", "card title (required)")
	description := fs.String("description", "", "card description")
	column := fs.String("column", "", "column name")
	dueDate := fs.String("due", "", "due date")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *boardID == "" || *title == "" {
		return fmt.Errorf("missing --board or --title. %s", cardUsage)
	}

	now := time.Now()
	card := models.Card{
		ID:          models.NewEntityID(now),
		Title:       *title,
		Description: *description,
		Column:      *column,
		DueDate:     *dueDate,
		CreatedAt:   now.Format(time.RFC3339),
		UpdatedAt:   now.Format(time.RFC3339),
	}
	entity, err := card.Entity()
	if err != nil {
		return fmt.Errorf("failed to encode card: %w", err)
	}
	if err := c.store.SaveCard(ctx, *boardID, entity); err != nil {
		if errors.Is(err, storage.ErrBoardNotFound) {
			return fmt.Errorf("board %s not found", *boardID)
		}
		return fmt.Errorf("failed to save card: %w", err)
	}

	c.io.Printf("✓ Card created: %s (id %s)\n", card.Title, card.ID)
	return nil
}

func (c *Cli) runCardList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("card list", flag.ContinueOnError)
	boardID := fs.String("board", "", "board id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *boardID == "" {
		return fmt.Errorf("missing --board. %s", cardUsage)
	}

	cards, err := c.store.ListCards(ctx, *boardID)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	if len(cards) == 0 {
		c.io.Println("No cards on this board.")
		return nil
	}

	c.io.Printf("=== Cards on board %s ===\n", *boardID)
	for _, entity := range cards {
		c.io.Printf("  %s  %s\n", entity.ID, entityTitle(entity))
	}
	c.io.Println()
	c.io.Printf("Total: %d card(s)\n", len(cards))
	return nil
}

func (c *Cli) runCardDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("card delete", flag.ContinueOnError)
	boardID := fs.String("board", "", "board id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *boardID == "" || fs.NArg() == 0 {
		return fmt.Errorf("missing --board or card id. %s", cardUsage)
	}
	cardID := fs.Arg(0)

	if err := c.store.DeleteCard(ctx, *boardID, cardID); err != nil {
		if errors.Is(err, storage.ErrCardNotFound) {
			return fmt.Errorf("card %s not found on board %s", cardID, *boardID)
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}

	c.io.Printf("✓ Card %s deleted\n", cardID)
	return nil
}
