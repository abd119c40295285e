package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/medkeeper/internal/client/records"
	"github.com/iudanet/medkeeper/internal/models"
)

// fieldFlags общие флаги add и edit
type fieldFlags struct {
	name   string
	dose   string
	form   string
	expiry string
	photo  string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "medicine name")
	cmd.Flags().StringVar(&f.dose, "dose", "", "dose, e.g. \"500 mg\"")
	cmd.Flags().StringVar(&f.form, "form", "", "form: tablet, syrup, ...")
	cmd.Flags().StringVar(&f.expiry, "expiry", "", "expiry: YYYY-MM-DD, YYYY-MM or a phrase like \"in 6 months\"")
	cmd.Flags().StringVar(&f.photo, "photo", "", "photo URL or local path")
}

func newAddCommand(e *env) *cobra.Command {
	flags := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a medicine package",
		Example: `  medkeeper add --name Paracetamol --dose "500 mg" --form tablet --expiry 2027-03
  medkeeper add --name Ibuprofen --expiry "in 6 months"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.cli.runAdd(cmd.Context(), flags)
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *Cli) runAdd(ctx context.Context, flags *fieldFlags) error {
	userID, err := c.currentUser(ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(flags.name) == "" {
		return records.ErrNameRequired
	}

	fields := models.Fields{
		Name:     flags.name,
		Dose:     flags.dose,
		Form:     flags.form,
		Expiry:   normalizeExpiry(flags.expiry, c.now()),
		PhotoURI: strings.TrimSpace(flags.photo),
	}

	res, err := c.records.Add(ctx, userID, fields)
	if err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}

	c.success("Added record %d: %s (%s)", res.Record.LocalID, res.Record.Name, pushState(res.Pushed))
	if fields.Expiry != "" && !models.ValidExpiry(fields.Expiry) {
		c.warning("expiry %q is not a date, it will not be uploaded", fields.Expiry)
	}
	return nil
}
