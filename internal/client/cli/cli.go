package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/rowfix/internal/client/api"
	"github.com/iudanet/rowfix/internal/client/config"
	"github.com/iudanet/rowfix/internal/client/editor"
	"github.com/iudanet/rowfix/internal/client/iocli"
	"github.com/iudanet/rowfix/internal/client/storage"
)

// Cli связывает команды с транспортом, локальным хранилищем черновиков
// и терминальным IO
type Cli struct {
	apiClient api.ClientAPI
	drafts    storage.DraftStorage
	io        iocli.IO
	logger    *slog.Logger
	cfg       config.Config
}

func New(apiClient api.ClientAPI, drafts storage.DraftStorage, io iocli.IO, logger *slog.Logger, cfg config.Config) *Cli {
	return &Cli{
		apiClient: apiClient,
		drafts:    drafts,
		io:        io,
		logger:    logger,
		cfg:       cfg,
	}
}

// newEditor создает редактор с зависимостями CLI
func (c *Cli) newEditor() *editor.Editor {
	return editor.NewEditor(c.apiClient, c.drafts, c.cfg, c.logger)
}

// parseAssignment разбирает аргумент вида "column=value"
func parseAssignment(arg string) (column, value string, err error) {
	idx := strings.Index(arg, "=")
	if idx <= 0 {
		return "", "", fmt.Errorf("expected column=value, got %q", arg)
	}
	return arg[:idx], arg[idx+1:], nil
}

func PrintUsage() {
	fmt.Println("Rowfix Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rowfix [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version           Show version information")
	fmt.Println("  --server URL        Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH           Path to local draft database (default: rowfix-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  versions <base-id>                      Show file version lineage")
	fmt.Println("  show <base-id> [offset]                 Show a window of quarantined rows")
	fmt.Println("  fix <base-id> <row-id> <col>=<val>...   Edit cells of one row and save")
	fmt.Println("  drafts <base-id> [clear]                List or clear local drafts")
	fmt.Println("  submit <base-id> [notes]                Submit edited dataset for reprocessing")
	fmt.Println()
	fmt.Println("Tunables (environment):")
	fmt.Println("  ROWFIX_PAGE_SIZE, ROWFIX_MAX_ROWS_IN_MEMORY, ROWFIX_MAX_EDITS_PER_BATCH,")
	fmt.Println("  ROWFIX_AUTOSAVE_DEBOUNCE, ROWFIX_OVERSCAN, ROWFIX_FETCH_THRESHOLD")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  rowfix versions upload-42")
	fmt.Println("  rowfix show upload-42")
	fmt.Println("  rowfix fix upload-42 row-17 amount=129.90 currency=EUR")
	fmt.Println("  rowfix submit upload-42 'fixed malformed amounts'")
}
