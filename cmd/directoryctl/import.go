package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/brew-directory/internal/ingest"
	"github.com/DjordjeVuckovic/brew-directory/internal/ingest/collector"
	"github.com/DjordjeVuckovic/brew-directory/internal/ingest/reader"
)

func importCmd() *cobra.Command {
	var (
		mappingPath string
		datasetPath string
		readers     int
		writers     int
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Upsert directory entries from a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mappingFile, err := os.Open(mappingPath)
			if err != nil {
				return fmt.Errorf("open mapping: %w", err)
			}
			defer mappingFile.Close()

			mapping, err := reader.NewYAMLConfigLoader(mappingFile).Load(true)
			if err != nil {
				return err
			}

			dataFile, err := os.Open(datasetPath)
			if err != nil {
				return fmt.Errorf("open dataset: %w", err)
			}
			defer dataFile.Close()

			stores, dir, err := openDirectory(ctx)
			if err != nil {
				return err
			}
			defer stores.Close()

			c := collector.NewEntryCollector(reader.NewCSVReader(dataFile), reader.NewEntryMapper(mapping))
			c.Workers = readers
			c.Options = &reader.MappingOptions{Strict: strict}

			stats, err := ingest.NewImportPipeline(c, dir, ingest.WithConcurrency(writers)).Run(ctx)
			if err != nil {
				return err
			}
			slog.Info("Import finished", "dataset", mapping.Dataset, "upserted", stats.Upserted, "failed", stats.Failed)
			return failures(int(stats.Failed), int(stats.Upserted+stats.Failed))
		},
	}

	cmd.Flags().StringVar(&mappingPath, "mapping", os.Getenv("MAPPING_CONFIG_PATH"), "data mapping YAML")
	cmd.Flags().StringVar(&datasetPath, "dataset", os.Getenv("DATASET_PATH"), "CSV dataset")
	cmd.Flags().IntVar(&readers, "readers", 4, "CSV parsing workers")
	cmd.Flags().IntVar(&writers, "writers", 1, "concurrent upserts")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject rows with any unparsable field")
	return cmd
}
