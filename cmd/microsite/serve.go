package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/detroitcommercial/microsite/internal/config"
	"github.com/detroitcommercial/microsite/internal/content"
	"github.com/detroitcommercial/microsite/internal/geoip"
	"github.com/detroitcommercial/microsite/internal/server"
	"github.com/detroitcommercial/microsite/internal/storage"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, *cfg)
		},
	}

	// Read by config.Load through the persistent pre-run.
	flags := cmd.Flags()
	flags.String("addr", "", "listen address, e.g. :8080 (overrides PORT)")
	flags.String("content", "", "YAML content file (overrides CONTENT_FILE)")
	flags.String("assets", "", "directory holding images/, video/ and audio/ (overrides ASSETS_DIR)")
	flags.String("static", "", "directory holding app.wasm and wasm_exec.js (overrides STATIC_DIR)")
	flags.Bool("watch", false, "reload the content file when it changes (overrides CONTENT_WATCH)")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	store, err := openContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	if cfg.Watch && cfg.ContentFile != "" {
		go func() {
			if err := store.Watch(ctx); err != nil {
				slog.Error("content watcher stopped", "error", err)
			}
		}()
	}

	geo := geoip.Open(cfg.GeoIPPath)
	defer geo.Close()

	srvCfg := server.Config{
		Content:  store,
		AssetsFS: dirFS(cfg.AssetsDir),
		StaticFS: dirFS(cfg.StaticDir),
		BaseURL:  cfg.BaseURL,
		Context:  ctx,
	}
	if geo.Enabled() {
		srvCfg.GeoIP = geo
	}

	if cfg.Storage.Enabled() {
		initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		bucket, err := storage.New(initCtx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("storage initialization failed: %w", err)
		}
		if err := bucket.Ping(initCtx); err != nil {
			return fmt.Errorf("storage bucket check failed: %w", err)
		}
		srvCfg.Storage = bucket
		srvCfg.StoragePinger = bucket
		srvCfg.StorageEndpoint = cfg.Storage.PublicEndpoint
		if srvCfg.StorageEndpoint == "" {
			srvCfg.StorageEndpoint = cfg.Storage.Endpoint
		}
		slog.Info("serving media from object storage", "bucket", cfg.Storage.Bucket)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(srvCfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("microsite listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	slog.Info("shutdown complete")
	return nil
}

func openContent(path string) (*content.Store, error) {
	if path == "" {
		return content.StaticStore(content.Default()), nil
	}
	store, err := content.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	slog.Info("content loaded", "path", path)
	return store, nil
}

// dirFS returns nil for a missing directory so the server can tell "not
// configured" apart from "empty".
func dirFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		slog.Warn("directory not found, serving without it", "dir", dir)
		return nil
	}
	return os.DirFS(dir)
}
