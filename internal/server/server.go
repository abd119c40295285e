// Package server wires the record service: routes, middleware chain and
// the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/medkeeper/internal/server/config"
	"github.com/iudanet/medkeeper/internal/server/handlers"
	"github.com/iudanet/medkeeper/internal/server/middleware"
	"github.com/iudanet/medkeeper/internal/server/storage"
)

const healthPath = "/health"

// Server is the record service HTTP server
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New builds the handler tree. Call Close (or Run) to release the rate limiter.
func New(cfg *config.Config, logger *slog.Logger, store storage.RecordStorage, version string) *Server {
	s := &Server{cfg: cfg, logger: logger}

	mux := http.NewServeMux()
	health := handlers.NewHealthHandler(logger, store, version)
	mux.HandleFunc("GET "+healthPath, health.Health)
	mux.HandleFunc("HEAD "+healthPath, health.Health)
	handlers.NewRecordsHandler(logger, store).Register(mux)

	mws := []func(http.Handler) http.Handler{
		middleware.RecoveryMiddleware(logger),
		middleware.RequestIDMiddleware(),
		middleware.LoggingWithSkip(logger, []string{healthPath}),
	}

	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow.Duration, logger)
		mws = append(mws, middleware.RateLimitMiddleware(s.limiter))
	}

	jwtCfg := JWTConfig(cfg)
	if jwtCfg.Enabled() {
		mws = append(mws, middleware.AuthMiddleware(logger, jwtCfg, healthPath))
	} else {
		logger.Warn("jwt_secret is empty, requests are not authenticated")
	}

	s.handler = middleware.Chain(mux, mws...)
	return s
}

// JWTConfig derives token settings from the server config
func JWTConfig(cfg *config.Config) handlers.JWTConfig {
	return handlers.JWTConfig{
		Issuer:         handlers.DefaultIssuer,
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.TokenTTL.Duration,
	}
}

// Handler returns the root handler with all middleware applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close stops background work of the middleware
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully
// within ShutdownTimeout. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.Close()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Server started", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout.Duration)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.logger.Info("Server stopped")
	return err
}
