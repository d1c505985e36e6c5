package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/brew-directory/internal/mapper"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

type bulkIndexer interface {
	IndexAll(ctx context.Context, recs []storage.EntryRecord) error
}

func reindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Copy every directory entry into the Elasticsearch geo index",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			stores, dir, err := openDirectory(ctx)
			if err != nil {
				return err
			}
			defer stores.Close()

			idx, ok := stores.Indexer.(bulkIndexer)
			if !ok {
				return fmt.Errorf("reindex needs NEARBY_BACKEND=es")
			}

			entries, err := dir.AllAttractions(ctx, "")
			if err != nil {
				return err
			}
			recs := make([]storage.EntryRecord, 0, len(entries))
			for _, e := range entries {
				recs = append(recs, mapper.ToRecord(e))
			}

			if err := idx.IndexAll(ctx, recs); err != nil {
				return fmt.Errorf("index entries: %w", err)
			}
			slog.Info("Reindex finished", "entries", len(recs))
			return nil
		},
	}
}
