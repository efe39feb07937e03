package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oliverisaac/jotter/auth"
	rediscache "github.com/oliverisaac/jotter/cache/redis"
	"github.com/oliverisaac/jotter/notes"
	"github.com/oliverisaac/jotter/store"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and serve the web app",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(cmd.Context()); err != nil {
				return errors.Wrap(err, "Failed to migrate")
			}
			logrus.Info("Database is up to date")
			return nil
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return errors.Wrap(err, "Failed to migrate")
	}

	var opts []notes.Option
	if cfg.RedisAddr != "" {
		authorCache, err := rediscache.NewRedisAuthorCache(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer authorCache.Close()
		opts = append(opts, notes.WithAuthorCache(authorCache, cfg.AuthorCacheTTL))
		logrus.Infof("Caching note authors in redis at %s", cfg.RedisAddr)
	}

	e := newServer(App{
		Config:   cfg,
		Notes:    notes.NewService(db, db, opts...),
		Auth:     auth.NewProvider(cfg, db),
		Ping:     db.Ping,
		Registry: prometheus.DefaultRegisterer,
		Gatherer: prometheus.DefaultGatherer,
	})

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Listening on %s", cfg.ListenAddr)
		if err := e.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
