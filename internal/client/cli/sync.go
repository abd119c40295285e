package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/medkeeper/internal/client/storage"
	"github.com/iudanet/medkeeper/internal/client/sync"
)

// ErrSyncIncomplete returned when a sync run did not fully succeed
var ErrSyncIncomplete = errors.New("sync did not complete")

// Направления синхронизации
const (
	DirectionFull = "full"
	DirectionDown = "down"
	DirectionUp   = "up"
)

type syncOptions struct {
	direction string
}

func newSyncCommand(e *env) *cobra.Command {
	opts := &syncOptions{}
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize local records with the record service",
		Long: `Synchronize local records with the record service.
down applies the server state locally, up uploads records that were
never uploaded, full runs down then up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.cli.runSync(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.direction, "direction", DirectionFull, "full, down or up")
	return cmd
}

func (c *Cli) runSync(ctx context.Context, opts *syncOptions) error {
	var run func(context.Context, int64) sync.Outcome
	switch opts.direction {
	case DirectionFull, "":
		run = c.syncer.FullSync
	case DirectionDown:
		run = c.syncer.ServerToLocal
	case DirectionUp:
		run = c.syncer.LocalToServer
	default:
		return fmt.Errorf("unknown direction %q, use full, down or up", opts.direction)
	}

	userID, err := c.currentUser(ctx)
	if err != nil {
		return err
	}

	c.title("=== Synchronization ===")
	outcome := run(ctx, userID)
	c.renderOutcome(outcome)

	err = c.session.SaveLastSync(ctx, &storage.SyncSummary{
		FinishedAt: c.now(),
		Message:    outcome.Message,
		UserID:     userID,
		Synced:     outcome.Synced,
		Errors:     outcome.Errors,
		Success:    outcome.Success,
	})
	if err != nil {
		c.warning("failed to store sync summary: %v", err)
	}

	if !outcome.Success {
		return fmt.Errorf("%w: %s", ErrSyncIncomplete, outcome.Message)
	}
	return nil
}
