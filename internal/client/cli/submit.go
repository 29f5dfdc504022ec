package cli

import (
	"context"
	"fmt"
	"strings"
)

// runSubmit отправляет исправленный датасет на повторную обработку.
// Несохранённые правки (включая восстановленные черновики) добиваются
// сохранением внутри SubmitReprocess
func (c *Cli) runSubmit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing base id. Usage: rowfix submit <base-id> [notes]")
	}
	baseID := args[0]
	patchNotes := strings.Join(args[1:], " ")

	ed := c.newEditor()
	defer ed.Close()

	if err := ed.Open(ctx, baseID); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	if notice := ed.Notice(); notice != "" {
		c.io.Printf("Note: %s\n\n", notice)
	}

	c.io.Println("=== Submit for Reprocessing ===")
	c.io.Println()
	c.io.Printf("Base:          %s\n", baseID)
	c.io.Printf("Pending edits: %d row(s)\n", ed.PendingCount())
	if patchNotes != "" {
		c.io.Printf("Notes:         %s\n", patchNotes)
	}
	c.io.Println()

	ok, err := c.io.Confirm("Submit dataset for reprocessing?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Submission canceled.")
		return nil
	}

	result, err := ed.SubmitReprocess(ctx, patchNotes)
	if err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Submitted: status=%s", result.Status)
	if result.NewID != "" {
		c.io.Printf(" new_id=%s", result.NewID)
	}
	if result.ExecutionRef != "" {
		c.io.Printf(" execution=%s", result.ExecutionRef)
	}
	c.io.Println()

	return nil
}
