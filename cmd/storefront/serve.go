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
	"golang.org/x/sync/errgroup"

	"github.com/fjod/go_cart/storefront/internal/catalog"
	h "github.com/fjod/go_cart/storefront/internal/http"
	"github.com/fjod/go_cart/storefront/internal/repository"
	"github.com/fjod/go_cart/storefront/internal/service"
	"github.com/fjod/go_cart/storefront/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP storefront",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg *Config) error {
	shutdownTracing, err := setupTracing(cfg.TracingStdout)
	if err != nil {
		return err
	}

	c, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", zap.Int("products", c.Len()), zap.Bool("sqlite", cfg.CatalogDBPath != ""))

	store := session.NewMemoryStore(cfg.SessionTTL, session.CleanupInterval)

	svc := service.NewStorefrontService(c, store, service.NewLogNotifier(logger), logger)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      h.NewRouter(svc, logger, cfg.RequestTimeout),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("storefront starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = store.Close()
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		if err := store.Close(); err != nil {
			logger.Warn("failed to stop session store", zap.Error(err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("failed to flush traces", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}

// loadCatalog reads the SQLite catalog when CATALOG_DB_PATH is set and the
// embedded fixture otherwise.
func loadCatalog(ctx context.Context, cfg *Config) (*catalog.Catalog, error) {
	if cfg.CatalogDBPath == "" {
		return catalog.Load(ctx, catalog.Fixture{})
	}

	repo, err := repository.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return catalog.Load(ctx, repo)
}
