package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type deleteOptions struct {
	localID int64
	yes     bool
}

func newDeleteCommand(e *env) *cobra.Command {
	opts := &deleteOptions{}
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLocalID(args[0])
			if err != nil {
				return err
			}
			opts.localID = id
			return e.cli.runDelete(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (c *Cli) runDelete(ctx context.Context, opts *deleteOptions) error {
	userID, err := c.currentUser(ctx)
	if err != nil {
		return err
	}

	rec, err := c.ownedRecord(ctx, userID, opts.localID)
	if err != nil {
		return err
	}

	if !opts.yes && c.io.Interactive() {
		answer, err := c.io.ReadInput(fmt.Sprintf("Delete %q? [y/N]: ", rec.Name))
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if a := strings.ToLower(answer); a != "y" && a != "yes" {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	res, err := c.records.Delete(ctx, opts.localID)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	c.success("Deleted record %d: %s", opts.localID, rec.Name)
	if !res.Pushed {
		c.hint("The server copy will be removed on the next sync.")
	}
	return nil
}
