package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/brew-directory/internal/apperr"
	"github.com/DjordjeVuckovic/brew-directory/internal/enrich"
)

func enrichCmd() *cobra.Command {
	var (
		entryType string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Refresh entries and append reviews from Google Places",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			apiKey := os.Getenv("GOOGLE_PLACES_API_KEY")
			if apiKey == "" {
				return fmt.Errorf("GOOGLE_PLACES_API_KEY environment variable is not set")
			}
			client, err := enrich.NewClient(apiKey, timeout)
			if err != nil {
				return fmt.Errorf("create places client: %w", err)
			}

			stores, dir, err := openDirectory(ctx)
			if err != nil {
				return err
			}
			defer stores.Close()
			if stores.ReviewWriter == nil {
				return apperr.ErrAdminCredentialMissing
			}

			enricher, err := enrich.NewEnricher(client, dir, stores.ReviewWriter)
			if err != nil {
				return err
			}

			entries, err := dir.AllAttractions(ctx, entryType)
			if err != nil {
				return err
			}

			var failed, skipped, reviews int
			for _, e := range entries {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				_, n, err := enricher.Enrich(ctx, e)
				switch {
				case errors.Is(err, enrich.ErrNoPlaceID):
					skipped++
				case err != nil:
					slog.Error("Enrichment failed", "slug", e.Slug, "error", err)
					failed++
				default:
					reviews += n
				}
			}

			slog.Info("Enrichment finished", "entries", len(entries), "skipped", skipped, "failed", failed, "reviews", reviews)
			return failures(failed, len(entries)-skipped)
		},
	}

	cmd.Flags().StringVar(&entryType, "type", "", "only enrich entries of this type")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Places API request timeout")
	return cmd
}
