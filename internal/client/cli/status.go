package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session, pending uploads and the last sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.cli.runStatus(cmd.Context())
		},
	}
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.title("=== Status ===")
	c.io.Println()

	userID, err := c.currentUser(ctx)
	if err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			c.io.Println("Status: Not logged in")
			c.io.Println()
			c.hint("Run 'medkeeper login --user-id N' to start.")
			return nil
		}
		return err
	}

	deviceID, err := c.session.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get device id: %w", err)
	}

	c.io.Printf("User:      %d\n", userID)
	c.io.Printf("Device:    %s\n", deviceID)

	pending, err := c.records.Pending(ctx, userID)
	if err != nil {
		// Не прерываем вывод
		c.warning("failed to count pending records: %v", err)
	} else if pending > 0 {
		c.io.Printf("Pending:   %d record(s) waiting for upload\n", pending)
	} else {
		c.io.Println("Pending:   none")
	}

	last, err := c.session.GetLastSync(ctx)
	switch {
	case err != nil:
		c.warning("failed to read last sync: %v", err)
	case last == nil || last.UserID != userID:
		c.io.Println("Last sync: never")
	default:
		ago := c.now().Sub(last.FinishedAt).Round(time.Second)
		c.io.Printf("Last sync: %s (%s ago)\n", last.FinishedAt.Format(time.RFC3339), ago)
		c.io.Printf("Result:    %s\n", last.Message)
	}

	return nil
}
