package main

import (
	"menuhub/internal/config"
	"menuhub/internal/db"
	"menuhub/internal/logger"

	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Create the menus table if it does not exist",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(false)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			// ConnectPostgres applies the schema before returning
			pool, err := db.ConnectPostgres(cmd.Context(), db.PoolConfig{
				DSN:      cfg.DatabaseURL,
				MaxConns: cfg.DBMaxConns,
				MinConns: cfg.DBMinConns,
			}, log)
			if err != nil {
				return err
			}
			pool.Close()

			log.Info("schema is up to date")
			return nil
		},
	}
}
