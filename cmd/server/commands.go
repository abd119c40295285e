package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/medkeeper/internal/logging"
	"github.com/iudanet/medkeeper/internal/server"
	"github.com/iudanet/medkeeper/internal/server/config"
	"github.com/iudanet/medkeeper/internal/server/handlers"
	"github.com/iudanet/medkeeper/internal/server/storage/sqlite"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "medkeeper-server",
		Short:         "Record service for the medkeeper client",
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newServeCommand(), newTokenCommand(), newVersionCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP record service",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	flags := config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath, flags)
		if err != nil {
			return err
		}

		logger, closer, err := logging.New(logging.Options{
			Output: cmd.ErrOrStderr(),
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		})
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx := cmd.Context()

		store, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("Failed to close storage", "error", err)
			}
		}()

		logger.Info("Starting medkeeper-server",
			"version", Version,
			"addr", cfg.Addr,
			"db", cfg.DBPath,
			"auth", cfg.JWTSecret != "",
			"rate_limit", cfg.RateLimit,
		)

		return server.New(cfg, logger, store, Version).Run(ctx)
	}
	return cmd
}

func newTokenCommand() *cobra.Command {
	var (
		configPath string
		secret     string
		userID     int64
		ttl        time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for a user (development only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, nil)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("secret") {
				cfg.JWTSecret = secret
			}
			if cmd.Flags().Changed("ttl") {
				cfg.TokenTTL = config.Duration{Duration: ttl}
			}

			if cfg.JWTSecret == "" {
				return errors.New("jwt secret is not configured, use --secret or jwt_secret in the config")
			}
			if userID <= 0 {
				return errors.New("--user-id must be positive")
			}

			token, expiresIn, err := handlers.GenerateAccessToken(server.JWTConfig(cfg), userID)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "expires in %s\n", time.Duration(expiresIn)*time.Second)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&secret, "secret", "s", "", "HMAC secret, overrides jwt_secret")
	cmd.Flags().Int64Var(&userID, "user-id", 0, "user id to put into the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "medkeeper server")
			_, _ = fmt.Fprintf(out, "Version:    %s\n", Version)
			_, _ = fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
			_, _ = fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		},
	}
}
