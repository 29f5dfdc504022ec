package cli

import (
	"context"
	"fmt"
)

// runDrafts показывает или очищает локальные черновики правок
func (c *Cli) runDrafts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing base id. Usage: rowfix drafts <base-id> [clear]")
	}
	baseID := args[0]

	if len(args) > 1 && args[1] == "clear" {
		if err := c.drafts.ClearDrafts(ctx, baseID); err != nil {
			return fmt.Errorf("failed to clear drafts: %w", err)
		}
		c.io.Println("✓ Drafts cleared")
		return nil
	}

	drafts, err := c.drafts.ListDrafts(ctx, baseID)
	if err != nil {
		return fmt.Errorf("failed to list drafts: %w", err)
	}

	c.io.Println("=== Local Drafts ===")
	c.io.Println()

	if len(drafts) == 0 {
		c.io.Println("No drafts found.")
		return nil
	}

	for _, draft := range drafts {
		c.io.Printf("- %s (%d cells, saved %s)\n",
			draft.RowID, len(draft.Cells), draft.SavedAt.Format("2006-01-02 15:04:05"))
		for column, value := range draft.Cells {
			c.io.Printf("    %s = %s\n", column, value)
		}
	}

	return nil
}
