package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/medkeeper/internal/client/storage"
)

type loginOptions struct {
	token    string
	userID   int64
	askToken bool
}

func newLoginCommand(e *env) *cobra.Command {
	opts := &loginOptions{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the session of an already authenticated user",
		Long: `Store the user id and access token issued by the account service.
When --token is omitted on a terminal, the token is read without echo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.askToken = !cmd.Flags().Changed("token")
			return e.cli.runLogin(cmd.Context(), opts)
		},
	}
	cmd.Flags().Int64Var(&opts.userID, "user-id", 0, "user id (required)")
	cmd.Flags().StringVar(&opts.token, "token", "", "access token for the record service")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func (c *Cli) runLogin(ctx context.Context, opts *loginOptions) error {
	if opts.userID <= 0 {
		return fmt.Errorf("invalid user id %d", opts.userID)
	}

	token := opts.token
	if opts.askToken && c.io.Interactive() {
		var err error
		token, err = c.io.ReadPassword("Access token (empty if the service has no auth): ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}

	err := c.session.SaveSession(ctx, &storage.Session{
		UserID:      opts.userID,
		AccessToken: token,
		CreatedAt:   c.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	deviceID, err := c.session.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get device id: %w", err)
	}

	c.success("Logged in as user %d", opts.userID)
	c.hint("Device: %s", deviceID)
	return nil
}

func newLogoutCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.cli.runLogout(cmd.Context())
		},
	}
}

func (c *Cli) runLogout(ctx context.Context) error {
	userID, err := c.currentUser(ctx)
	if err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			c.io.Println("Not logged in.")
			return nil
		}
		return err
	}

	// Незагруженные записи остаются в локальной БД и уйдут после следующего login
	pending, err := c.records.Pending(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count pending records: %w", err)
	}

	if err := c.session.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.success("Logged out")
	if pending > 0 {
		c.warning("%d record(s) of user %d were not uploaded yet", pending, userID)
	}
	return nil
}
