package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fjod/go_cart/storefront/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create and seed the SQLite catalog at CATALOG_DB_PATH",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.CatalogDBPath == "" {
			return errors.New("CATALOG_DB_PATH is not set")
		}

		repo, err := repository.NewRepository(cfg.CatalogDBPath)
		if err != nil {
			return err
		}
		defer repo.Close()

		if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
			return err
		}
		logger.Info("catalog migrated", zap.String("db", cfg.CatalogDBPath))
		return nil
	},
}
