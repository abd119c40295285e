package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/medkeeper/internal/client/api"
	"github.com/iudanet/medkeeper/internal/client/config"
	"github.com/iudanet/medkeeper/internal/client/connectivity"
	"github.com/iudanet/medkeeper/internal/client/iocli"
	"github.com/iudanet/medkeeper/internal/client/records"
	"github.com/iudanet/medkeeper/internal/client/storage"
	"github.com/iudanet/medkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/medkeeper/internal/client/storage/sqlite"
	"github.com/iudanet/medkeeper/internal/client/sync"
	"github.com/iudanet/medkeeper/internal/logging"
)

// annotationNoSetup помечает команды, которым не нужны хранилища
const annotationNoSetup = "medkeeper/no-setup"

type rootOptions struct {
	configFile string
	server     string
	db         string
	session    string
	logLevel   string
}

// env связывает команды с Cli, который создается после разбора флагов
type env struct {
	cli     *Cli
	closers []io.Closer
}

func (e *env) close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// setupFunc builds the Cli for a command invocation
type setupFunc func(cmd *cobra.Command, opts *rootOptions, e *env) error

// Execute runs the medkeeper command line
func Execute(ctx context.Context, info BuildInfo) error {
	e := &env{}
	root := newRootCommand(info, e, setupApp)
	err := root.ExecuteContext(ctx)
	if cerr := e.close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func newRootCommand(info BuildInfo, e *env, setup setupFunc) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "medkeeper",
		Short: "Offline-first medicine cabinet tracker",
		Long: `medkeeper keeps a local list of medicine packages and synchronizes it
with the record service whenever the service is reachable.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoSetup] != "" {
				return nil
			}
			return setup(cmd, opts, e)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default $HOME/.medkeeper/config.yaml)")
	flags.StringVar(&opts.server, "server", "", "record service URL")
	flags.StringVar(&opts.db, "db", "", "path to the local records database")
	flags.StringVar(&opts.session, "session", "", "path to the session database")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newLoginCommand(e),
		newLogoutCommand(e),
		newStatusCommand(e),
		newAddCommand(e),
		newEditCommand(e),
		newDeleteCommand(e),
		newListCommand(e),
		newSyncCommand(e),
		newVersionCommand(info),
	)

	return root
}

// setupApp загружает конфигурацию и открывает хранилища
func setupApp(cmd *cobra.Command, opts *rootOptions, e *env) error {
	ctx := cmd.Context()

	v := viper.New()
	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"server.url":   "server",
		"db.path":      "db",
		"session.path": "session",
		"log.level":    "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	cfg, err := config.Load(v, opts.configFile, config.DefaultDir())
	if err != nil {
		return err
	}

	for _, path := range []string{cfg.DB.Path, cfg.Session.Path, cfg.Log.File} {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}

	logger, logCloser, err := logging.New(logging.Options{
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
	})
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	e.closers = append(e.closers, logCloser)

	store, err := sqlite.New(ctx, cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to open local database: %w", err)
	}
	e.closers = append(e.closers, store)

	sessionStore, err := boltdb.New(ctx, cfg.Session.Path)
	if err != nil {
		return fmt.Errorf("failed to open session database: %w", err)
	}
	e.closers = append(e.closers, sessionStore)

	// Токен сессии важнее токена из конфигурации
	token := cfg.Server.Token
	if s, err := sessionStore.GetSession(ctx); err == nil && s.AccessToken != "" {
		token = s.AccessToken
	} else if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to read session: %w", err)
	}

	apiClient := api.NewClient(cfg.Server.URL,
		api.WithToken(token),
		api.WithTimeout(cfg.Server.Timeout),
	)
	probe := connectivity.NewHTTPProbe(cfg.Probe.URL, cfg.Probe.Timeout)

	logger.Debug("client configured",
		"server", cfg.Server.URL,
		"db", cfg.DB.Path,
		"session", cfg.Session.Path,
	)

	reconciler := sync.NewReconciler(store, apiClient, probe, logger)

	e.cli = New(
		iocli.NewStdio(cmd.InOrStdin(), cmd.OutOrStdout()),
		records.NewService(store, apiClient, probe, logger, records.WithLocker(reconciler)),
		reconciler,
		sessionStore,
	)
	return nil
}
