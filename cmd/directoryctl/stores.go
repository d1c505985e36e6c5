package main

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/brew-directory/internal/apperr"
	"github.com/DjordjeVuckovic/brew-directory/internal/directory"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/factory"
)

// openDirectory opens storage and wires the privileged directory service every ingestion command writes through.
func openDirectory(ctx context.Context) (*factory.Stores, *directory.Service, error) {
	cfg, err := factory.LoadEnv()
	if err != nil {
		return nil, nil, err
	}

	stores, err := factory.Open(ctx, *cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	if stores.Writer == nil {
		stores.Close()
		return nil, nil, apperr.ErrAdminCredentialMissing
	}

	var opts []directory.Option
	if stores.Indexer != nil {
		opts = append(opts, directory.WithIndexer(stores.Indexer))
	}
	return stores, directory.NewService(stores.Entries, stores.Writer, opts...), nil
}

// failures turns a per-entry failure count into the command's exit status.
func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d entries failed", failed, total)
}
