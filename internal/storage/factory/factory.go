package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/brew-directory/internal/capability"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/es"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/brew-directory/pkg/server"
)

// Stores bundles every backend the API and the ingestion commands need.
// Writer, ReviewWriter and NewsWriter are nil when no privileged credential is configured.
type Stores struct {
	Entries      storage.EntryReader
	Writer       storage.EntryWriter
	Reviews      storage.ReviewReader
	ReviewWriter storage.ReviewWriter
	News         storage.NewsReader
	NewsWriter   storage.NewsWriter

	Nearby  storage.NearbyQuerier
	Indexer storage.EntryIndexer
	Probe   capability.Probe
	Health  pkgserver.HealthChecker

	closers []func()
}

// Open connects every backend described by cfg. On error, anything already opened is closed.
func Open(ctx context.Context, cfg StorageConfig) (*Stores, error) {
	s := &Stores{}

	var err error
	switch cfg.Type {
	case storage.PG:
		err = s.openPg(ctx, cfg)
	case storage.InMem:
		s.openInMem()
	default:
		err = fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
	if err == nil {
		err = s.openNearby(ctx, cfg)
	}
	if err == nil {
		err = s.openProbe(ctx, cfg)
	}
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

func (s *Stores) openPg(ctx context.Context, cfg StorageConfig) error {
	if cfg.Pg == nil {
		return fmt.Errorf("PostgreSQL configuration is missing")
	}

	if cfg.Migrate {
		connStr := cfg.Pg.ConnStr
		if cfg.Admin != nil {
			connStr = cfg.Admin.ConnStr
		}
		version, dirty, err := pg.RunMigrations(connStr)
		if err != nil {
			return err
		}
		slog.Info("Database migrations applied", "version", version, "dirty", dirty)
	}

	pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
	if err != nil {
		return fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
	}
	s.closers = append(s.closers, pool.Close)

	entries := pg.NewEntryStore(pool)
	s.Entries = entries
	s.Reviews = pg.NewReviewStore(pool)
	s.News = pg.NewNewsStore(pool)
	s.Health = pg.NewHealthChecker(pool)
	if cfg.Nearby == NearbyStore {
		s.Nearby = entries
	}

	if cfg.Admin == nil {
		return nil
	}
	admin, err := pg.NewConnectionPool(ctx, *cfg.Admin)
	if err != nil {
		return fmt.Errorf("failed to create privileged PostgreSQL connection pool: %w", err)
	}
	s.closers = append(s.closers, admin.Close)

	s.Writer = pg.NewEntryStore(admin)
	s.ReviewWriter = pg.NewReviewStore(admin)
	s.NewsWriter = pg.NewNewsStore(admin)
	return nil
}

func (s *Stores) openInMem() {
	store := in_mem.NewInMemStorer()
	s.Entries = store
	s.Writer = store
	s.Reviews = store
	s.ReviewWriter = store
	s.News = store
	s.NewsWriter = store
	s.Health = pkgserver.NewOkHealthChecker()
}

func (s *Stores) openNearby(ctx context.Context, cfg StorageConfig) error {
	switch cfg.Nearby {
	case NearbyStore:
		if provider, ok := s.Entries.(storage.CapabilityProvider); !ok || !provider.GetCapabilities().Nearby {
			slog.Warn("Storage backend has no server-side proximity query, using fallback only", "storage", cfg.Type)
			s.Nearby = nil
		}
	case NearbyES:
		if cfg.Es == nil {
			return fmt.Errorf("elasticsearch configuration is missing")
		}
		idx, err := es.NewGeoIndex(ctx, *cfg.Es)
		if err != nil {
			return fmt.Errorf("failed to create Elasticsearch geo index: %w", err)
		}
		s.Nearby = idx
		s.Indexer = idx
	}
	return nil
}

func (s *Stores) openProbe(ctx context.Context, cfg StorageConfig) error {
	switch cfg.Probe {
	case ProbeMemory:
		s.Probe = capability.NewMemoryProbe(cfg.ProbeTTL)
	case ProbeRedis:
		probe, err := capability.NewRedisProbe(ctx, cfg.RedisAddr, cfg.ProbeTTL)
		if err != nil {
			return err
		}
		s.Probe = probe
		s.closers = append(s.closers, func() {
			if err := probe.Close(); err != nil {
				slog.Warn("Failed to close Redis probe", "error", err)
			}
		})
	}
	return nil
}
