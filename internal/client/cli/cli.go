package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/boardsync/internal/client/api"
	"github.com/iudanet/boardsync/internal/client/iocli"
	"github.com/iudanet/boardsync/internal/client/storage/boltdb"
	"github.com/iudanet/boardsync/internal/client/sync"
)

type Cli struct {
	io          iocli.IO
	apiClient   *api.Client
	store       *boltdb.Storage
	syncService *sync.Service
	skipConfirm bool
}

func New(io iocli.IO, apiClient *api.Client, store *boltdb.Storage, syncService *sync.Service, skipConfirm bool) *Cli {
	c := &Cli{
		io:          io,
		apiClient:   apiClient,
		store:       store,
		syncService: syncService,
		skipConfirm: skipConfirm,
	}
	syncService.SetStatusFunc(c.printStatus)
	syncService.SetConfirmFunc(c.confirm)
	return c
}

// printStatus печатает статусные события оркестратора с префиксом уровня
func (c *Cli) printStatus(level sync.StatusLevel, message string) {
	switch level {
	case sync.StatusSuccess:
		c.io.Printf("✓ %s\n", message)
	case sync.StatusWarning:
		c.io.Printf("! %s\n", message)
	case sync.StatusError:
		c.io.Printf("✗ %s\n", message)
	case sync.StatusSyncing:
		c.io.Printf("… %s\n", message)
	default:
		c.io.Println(message)
	}
}

// confirm запрашивает y/N подтверждение. С флагом --yes или без
// терминала подтверждение считается полученным только через --yes.
func (c *Cli) confirm(prompt string) (bool, error) {
	if c.skipConfirm {
		return true, nil
	}
	if !c.io.IsInteractive() {
		return false, fmt.Errorf("confirmation required: re-run with --yes in non-interactive mode")
	}
	answer, err := c.io.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func PrintUsage() {
	fmt.Println("BoardSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  boardsync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version       Show version information")
	fmt.Println("  --server URL    Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH       Path to local database (default: boardsync-client.db)")
	fmt.Println("  --yes           Skip confirmation prompts")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  status                       Show sync status")
	fmt.Println("  board add|list|delete        Manage boards")
	fmt.Println("  card add|list|delete         Manage cards")
	fmt.Println("  connect new                  Create a new Sync ID and upload local data")
	fmt.Println("  connect <sync-id>            Activate an existing Sync ID (replaces local data)")
	fmt.Println("  disconnect                   Delete the cloud copy and forget the Sync ID")
	fmt.Println("  sync                         Synchronize local data with the cloud")
	fmt.Println("  watch                        Keep syncing on remote changes")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  boardsync board add --title 'Groceries'")
	fmt.Println("  boardsync card add --board 1700000000000 --title 'Milk'")
	fmt.Println("  boardsync connect new")
	fmt.Println("  boardsync connect ABC123 --yes")
	fmt.Println("  boardsync sync")
	fmt.Println("  boardsync --server https://example.com watch")
}
