package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/brew-directory/pkg/config/env"
)

var verbose bool

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "directoryctl",
		Short:         "Ingestion and maintenance commands for the brewery directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/directoryctl/.env"); err != nil {
				slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(importCmd())
	root.AddCommand(enrichCmd())
	root.AddCommand(newsCmd())
	root.AddCommand(reindexCmd())
	root.AddCommand(migrateCmd())

	return root
}
