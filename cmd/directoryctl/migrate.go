package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage/pg"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			connStr := os.Getenv("PG_ADMIN_CONNECTION_STRING")
			if connStr == "" {
				connStr = os.Getenv("PG_CONNECTION_STRING")
			}
			if connStr == "" {
				return fmt.Errorf("PG_ADMIN_CONNECTION_STRING or PG_CONNECTION_STRING must be set")
			}

			version, dirty, err := pg.RunMigrations(connStr)
			if err != nil {
				return err
			}
			slog.Info("Migrations applied", "version", version, "dirty", dirty)
			return nil
		},
	}
}
