package cli

import (
	"context"
	"fmt"
)

// runVersions показывает lineage версий файла
func (c *Cli) runVersions(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing base id. Usage: rowfix versions <base-id>")
	}
	baseID := args[0]

	versions, err := c.apiClient.GetVersions(ctx, baseID)
	if err != nil {
		return fmt.Errorf("failed to fetch versions: %w", err)
	}

	c.io.Println("=== Version Lineage ===")
	c.io.Println()

	if len(versions) == 0 {
		c.io.Println("No versions found.")
		return nil
	}

	for _, v := range versions {
		c.io.Printf("v%-4d %-14s rows: %-8d quarantined: %-8d upload: %s\n",
			v.Version, v.Status, v.RowCount, v.QuarantinedRows, v.UploadID)
	}

	return nil
}
