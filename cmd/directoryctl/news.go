package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/brew-directory/internal/apperr"
	"github.com/DjordjeVuckovic/brew-directory/internal/news"
)

func newsCmd() *cobra.Command {
	var (
		entryType string
		topN      int
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Fetch RSS news for every brewery and keep the most relevant articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			stores, dir, err := openDirectory(ctx)
			if err != nil {
				return err
			}
			defer stores.Close()
			if stores.NewsWriter == nil {
				return apperr.ErrAdminCredentialMissing
			}

			ingester := news.NewIngester(news.NewFetcher(timeout), stores.NewsWriter, news.WithTopN(topN))

			entries, err := dir.AllAttractions(ctx, entryType)
			if err != nil {
				return err
			}

			var failed, stored int
			for _, e := range entries {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				n, err := ingester.Ingest(ctx, e)
				if err != nil {
					slog.Error("News fetch failed", "slug", e.Slug, "error", err)
					failed++
					continue
				}
				stored += n
			}

			slog.Info("News fetch finished", "entries", len(entries), "failed", failed, "articles", stored)
			return failures(failed, len(entries))
		},
	}

	cmd.Flags().StringVar(&entryType, "type", "brewery", "entry type to fetch news for, empty for all")
	cmd.Flags().IntVar(&topN, "top", news.DefaultTopN, "articles kept per entry")
	cmd.Flags().DurationVar(&timeout, "timeout", news.DefaultTimeout, "feed request timeout")
	return cmd
}
