package cli

import (
	"context"
	"fmt"
)

// runFix применяет правки к ячейкам одной строки и сразу сохраняет их
func (c *Cli) runFix(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: rowfix fix <base-id> <row-id> <column>=<value>...")
	}
	baseID := args[0]
	rowID := args[1]

	ed := c.newEditor()
	defer ed.Close()

	if err := ed.Open(ctx, baseID); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	if notice := ed.Notice(); notice != "" {
		c.io.Printf("Note: %s\n\n", notice)
	}

	for _, arg := range args[2:] {
		column, value, err := parseAssignment(arg)
		if err != nil {
			return err
		}
		if err := ed.EditCell(rowID, column, value); err != nil {
			return fmt.Errorf("failed to edit %s: %w", column, err)
		}
	}

	summary, err := ed.SaveEdits(ctx)
	if err != nil {
		return fmt.Errorf("failed to save edits: %w", err)
	}

	c.io.Printf("✓ Saved: %d accepted, %d rejected\n", summary.Accepted, len(summary.Rejected))
	for _, rejected := range summary.Rejected {
		c.io.Printf("  rejected %s.%s: %s\n", rejected.RowID, rejected.Column, rejected.Reason)
	}

	if ed.CompatibilityMode() {
		c.io.Println()
		c.io.Println("Edits are kept locally until 'rowfix submit' (compatibility mode).")
	}

	return nil
}
