package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/medkeeper/internal/models"
)

type listOptions struct {
	pending bool
	json    bool
}

func newListCommand(e *env) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List records of the current user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.cli.runList(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.pending, "pending", false, "only records waiting for upload")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")
	return cmd
}

func (c *Cli) runList(ctx context.Context, opts *listOptions) error {
	userID, err := c.currentUser(ctx)
	if err != nil {
		return err
	}

	recs, err := c.records.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if opts.pending {
		filtered := make([]*models.Record, 0, len(recs))
		for _, rec := range recs {
			if rec.IsPending() {
				filtered = append(filtered, rec)
			}
		}
		recs = filtered
	}

	if opts.json {
		enc := json.NewEncoder(c.io)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	if len(recs) == 0 {
		c.io.Println("No records found.")
		c.io.Println()
		c.hint("Use 'medkeeper add --name <name>' to add your first medicine.")
		return nil
	}

	c.io.Println(c.recordsTable(recs))
	c.hint("%d record(s)", len(recs))
	return nil
}
