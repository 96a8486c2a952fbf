package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/iudanet/boardsync/internal/client/storage"
	"github.com/iudanet/boardsync/internal/models"
)

var boardUsage = "Usage: boardsync board <add|list|delete> [flags]"

func (c *Cli) runBoard(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", boardUsage)
	}

	switch args[0] {
	case "add":
		return c.runBoardAdd(ctx, args[1:])
	case "list":
		return c.runBoardList(ctx)
	case "delete":
		return c.runBoardDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], boardUsage)
	}
}

func (c *Cli) runBoardAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("board add", flag.ContinueOnError)
	title := fs.String("title", "", "board title (required)")
	color := fs.String("color", "", "board color")
	description := fs.String("description", "", "board description")
	icon := fs.String("icon", "", "board icon")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		return fmt.Errorf("missing --title. %s", boardUsage)
	}

	now := time.Now()
	board := models.Board{
		ID:          models.NewEntityID(now),
		Title:       *title,
		Color:       *color,
		Description: *description,
		Icon:        *icon,
		CreatedAt:   now.Format(time.RFC3339),
		UpdatedAt:   now.Format(time.RFC3339),
	}
	entity, err := board.Entity()
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	if err := c.store.SaveBoard(ctx, entity); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	c.io.Printf("✓ Board created: %s (id %s)\n", board.Title, board.ID)
	return nil
}

func (c *Cli) runBoardList(ctx context.Context) error {
	boards, err := c.store.ListBoards(ctx)
	if err != nil {
		return fmt.Errorf("failed to list boards: %w", err)
	}

	if len(boards) == 0 {
		c.io.Println("No boards yet. Create one with 'boardsync board add --title ...'")
		return nil
	}

	c.io.Println("=== Boards ===")
	for _, entity := range boards {
		c.io.Printf("  %s  %s\n", entity.ID, entityTitle(entity))
	}
	c.io.Println()
	c.io.Printf("Total: %d board(s)\n", len(boards))
	return nil
}

func (c *Cli) runBoardDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing board id. %s", boardUsage)
	}
	id := args[0]

	ok, err := c.confirm(fmt.Sprintf("Delete board %s and all its cards?", id))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.store.DeleteBoard(ctx, id); err != nil {
		if errors.Is(err, storage.ErrBoardNotFound) {
			return fmt.Errorf("board %s not found", id)
		}
		return fmt.Errorf("failed to delete board: %w", err)
	}

	c.io.Printf("✓ Board %s deleted\n", id)
	return nil
}

// entityTitle достает отображаемое имя из непрозрачного payload
func entityTitle(entity models.Entity) string {
	var probe struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(entity.Raw, &probe); err != nil || probe.Title == "" {
		return "(untitled)"
	}
	return probe.Title
}
