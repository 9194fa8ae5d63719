package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/repository"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()

			db, err := repository.NewDB(config.Cfg.Database, logger)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			if err := repository.RunMigrations(ctx, db, config.Cfg.Database.Driver, logger); err != nil {
				return err
			}
			logger.Info("Migrations applied")
			return nil
		},
	}
}
