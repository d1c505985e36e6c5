package factory

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/brew-directory/internal/capability"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/es"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/pg"
	"github.com/DjordjeVuckovic/brew-directory/pkg/utils"
)

// NearbyBackend selects the server-side proximity path.
type NearbyBackend string

const (
	NearbyStore NearbyBackend = "store"
	NearbyES    NearbyBackend = "es"
	NearbyNone  NearbyBackend = "none"
)

// ProbeBackend selects where primary-path failures are remembered.
type ProbeBackend string

const (
	ProbeNone   ProbeBackend = "none"
	ProbeMemory ProbeBackend = "memory"
	ProbeRedis  ProbeBackend = "redis"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	// Admin is the privileged writer. Nil leaves the directory read-only.
	Admin   *pg.PoolConfig
	Migrate bool

	Nearby NearbyBackend
	Es     *es.ClientConfig

	Probe     ProbeBackend
	ProbeTTL  time.Duration
	RedisAddr string
}

func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Error("STORAGE_TYPE environment variable is not set")
		return nil, fmt.Errorf("STORAGE_TYPE environment variable is not set")
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	cfg := &StorageConfig{
		Type:    storageType,
		Migrate: os.Getenv("PG_MIGRATE") == "true",
	}

	if storageType == storage.PG {
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if adminConnStr := os.Getenv("PG_ADMIN_CONNECTION_STRING"); adminConnStr != "" {
			cfg.Admin = &pg.PoolConfig{ConnStr: adminConnStr}
		} else {
			slog.Warn("PG_ADMIN_CONNECTION_STRING is not set, directory writes are disabled")
		}
	}

	nearby, err := loadNearby(storageType)
	if err != nil {
		return nil, err
	}
	cfg.Nearby = nearby

	if nearby == NearbyES {
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitTrimmed(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if err := cfg.Es.Validate(); err != nil {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses, "indexName", cfg.Es.Index())
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: %w", err)
		}
	}

	if err := loadProbe(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadNearby(storageType storage.Type) (NearbyBackend, error) {
	nearby := NearbyBackend(os.Getenv("NEARBY_BACKEND"))
	switch nearby {
	case "":
		if storageType == storage.PG {
			return NearbyStore, nil
		}
		return NearbyNone, nil
	case NearbyStore, NearbyES, NearbyNone:
		return nearby, nil
	default:
		return "", fmt.Errorf(
			"invalid NEARBY_BACKEND environment variable value: %s, expected one of %v",
			nearby,
			[]NearbyBackend{NearbyStore, NearbyES, NearbyNone})
	}
}

func loadProbe(cfg *StorageConfig) error {
	cfg.Probe = ProbeBackend(os.Getenv("NEARBY_PROBE"))
	switch cfg.Probe {
	case "":
		cfg.Probe = ProbeNone
	case ProbeNone, ProbeMemory, ProbeRedis:
	default:
		return fmt.Errorf(
			"invalid NEARBY_PROBE environment variable value: %s, expected one of %v",
			cfg.Probe,
			[]ProbeBackend{ProbeNone, ProbeMemory, ProbeRedis})
	}

	cfg.ProbeTTL = capability.DefaultTTL
	if raw := os.Getenv("NEARBY_PROBE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return fmt.Errorf("invalid NEARBY_PROBE_TTL value %q: expected a positive duration", raw)
		}
		cfg.ProbeTTL = ttl
	}

	if cfg.Probe == ProbeRedis {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
		if cfg.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR environment variable is not set")
		}
	}
	return nil
}
