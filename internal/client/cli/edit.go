package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/medkeeper/internal/client/records"
)

// errNothingToChange returned by edit without field flags
var errNothingToChange = errors.New("nothing to change, pass at least one field flag")

type editOptions struct {
	fields  fieldFlags
	changed map[string]bool
	localID int64
}

func newEditCommand(e *env) *cobra.Command {
	opts := &editOptions{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a record",
		Long: `Change fields of a record. Only the passed flags are changed;
an empty value clears the field.`,
		Example: `  medkeeper edit 3 --dose "250 mg"
  medkeeper edit 3 --expiry ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLocalID(args[0])
			if err != nil {
				return err
			}
			opts.localID = id
			opts.changed = map[string]bool{}
			for _, name := range []string{"name", "dose", "form", "expiry", "photo"} {
				opts.changed[name] = cmd.Flags().Changed(name)
			}
			return e.cli.runEdit(cmd.Context(), opts)
		},
	}
	opts.fields.register(cmd)
	return cmd
}

func (c *Cli) runEdit(ctx context.Context, opts *editOptions) error {
	userID, err := c.currentUser(ctx)
	if err != nil {
		return err
	}

	rec, err := c.ownedRecord(ctx, userID, opts.localID)
	if err != nil {
		return err
	}

	fields := rec.Fields
	touched := false
	if opts.changed["name"] {
		if strings.TrimSpace(opts.fields.name) == "" {
			return records.ErrNameRequired
		}
		fields.Name, touched = opts.fields.name, true
	}
	if opts.changed["dose"] {
		fields.Dose, touched = opts.fields.dose, true
	}
	if opts.changed["form"] {
		fields.Form, touched = opts.fields.form, true
	}
	if opts.changed["expiry"] {
		fields.Expiry, touched = normalizeExpiry(opts.fields.expiry, c.now()), true
	}
	if opts.changed["photo"] {
		fields.PhotoURI, touched = strings.TrimSpace(opts.fields.photo), true
	}
	if !touched {
		return errNothingToChange
	}

	res, err := c.records.Edit(ctx, opts.localID, fields)
	if err != nil {
		return fmt.Errorf("failed to edit record: %w", err)
	}

	switch {
	case res.Pushed:
		c.success("Updated record %d (synced)", opts.localID)
	case res.Record != nil && res.Record.IsPending():
		c.success("Updated record %d (pending upload)", opts.localID)
	default:
		// Проходы синхронизации не повторяют правки уже загруженных записей
		c.success("Updated record %d locally", opts.localID)
		c.warning("the change did not reach the server, repeat the edit when online")
	}
	return nil
}

func parseLocalID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", s)
	}
	return id, nil
}
