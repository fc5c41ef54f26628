// Command orderdesk-migrate applies the embedded schema migrations.
//
//	go run ./migrations/orderdesk up
//	go run ./migrations/orderdesk status
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghuser/orderdesk/migrations"
	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/migrator"
)

type migrateFunc func(ctx context.Context, db *sql.DB, files fs.FS, log logger.Logger) error

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbURL string

	cmd := &cobra.Command{
		Use:           "orderdesk-migrate",
		Short:         "Manage the orderdesk database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&dbURL, "database-url", "", "PostgreSQL URL (defaults to DATABASE_URL)")

	cmd.AddCommand(
		newMigrateCmd("up", "Apply all pending migrations", &dbURL, migrator.Up),
		newMigrateCmd("down", "Roll back the most recent migration", &dbURL, migrator.Down),
		newMigrateCmd("status", "Show applied and pending migrations", &dbURL, migrator.Status),
	)
	return cmd
}

func newMigrateCmd(use, short string, dbURL *string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			url := cfg.DatabaseURL
			if *dbURL != "" {
				url = *dbURL
			}

			log := logger.New(cfg)
			db, err := migrator.Open(url)
			if err != nil {
				return err
			}
			defer db.Close()

			return run(cmd.Context(), db, migrations.FS(), log)
		},
	}
}
