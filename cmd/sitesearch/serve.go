package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyperjump/sitesearch/internal/catalog"
	"github.com/hyperjump/sitesearch/internal/server"
	"github.com/hyperjump/sitesearch/internal/watcher"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		dir     string
		host    string
		port    int
		noWatch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a built site with its search index and search API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, resolved, debug, err := setup(opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dir") {
				cfg.Site.Dir = dir
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			logger, err := newLogger(debug)
			if err != nil {
				return err
			}
			defer logger.Sync()
			logger.Info("config loaded",
				zap.String("config_path", resolved),
				zap.Bool("debug", debug),
			)

			indexPath := cfg.Site.IndexPath()
			cat := catalog.New()
			if err := cat.LoadFile(indexPath); err != nil {
				logger.Warn("search index not loaded", zap.String("path", indexPath), zap.Error(err))
			} else {
				logger.Info("search index loaded", zap.String("path", indexPath), zap.Int("entries", cat.Info().Entries))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !noWatch {
				watchOpts := []watcher.WatcherOption{}
				if debug {
					watchOpts = append(watchOpts, watcher.WithLogger(logger))
				}
				watchSvc := watcher.NewWatcher([]string{indexPath}, func(path string) {
					reloadCatalog(cat, path, logger)
				}, watchOpts...)
				if err := watchSvc.Start(ctx); err != nil {
					return fmt.Errorf("failed to start watcher: %w", err)
				}
				defer watchSvc.Stop()
			}

			srv := server.NewServer(cat, &cfg.Site, &cfg.Server, logger)
			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case <-ctx.Done():
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
			}

			logger.Info("Shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "built site directory (overrides config)")
	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload search.json when it changes")
	return cmd
}

// reloadCatalog swaps in the rewritten index. A file that fails to parse keeps the
// previous snapshot.
func reloadCatalog(cat *catalog.Catalog, path string, logger *zap.Logger) {
	if err := cat.LoadFile(path); err != nil {
		logger.Warn("search index reload failed", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("search index reloaded", zap.String("path", path), zap.Int("entries", cat.Info().Entries))
}
