package main

import (
	"context"
	"fmt"

	"github.com/linskybing/property-portal/internal/config"
	"github.com/linskybing/property-portal/internal/config/db"
	"github.com/linskybing/property-portal/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create enum types and migrate every table, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.Open(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	if err := db.Migrate(gdb); err != nil {
		return err
	}
	log.Info("database migrated", zap.Int("models", len(db.Models)))
	return nil
}
