package capability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "capability:unavailable:"

// RedisProbe shares capability marks between replicas through expiring Redis keys.
// A Redis failure is treated as "available" so the primary path is still attempted.
type RedisProbe struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProbe(ctx context.Context, addr string, ttl time.Duration) (*RedisProbe, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	slog.Info("Capability probe connected to Redis", "addr", addr, "ttl", ttl)
	return &RedisProbe{client: client, ttl: ttl}, nil
}

func (p *RedisProbe) Available(ctx context.Context, name string) bool {
	count, err := p.client.Exists(ctx, redisKeyPrefix+name).Result()
	if err != nil {
		slog.Warn("Capability probe lookup failed", "capability", name, "error", err)
		return true
	}
	return count == 0
}

func (p *RedisProbe) MarkUnavailable(ctx context.Context, name string) {
	if err := p.client.Set(ctx, redisKeyPrefix+name, time.Now().UTC().Format(time.RFC3339), p.ttl).Err(); err != nil {
		slog.Warn("Capability probe mark failed", "capability", name, "error", err)
	}
}

func (p *RedisProbe) Close() error {
	return p.client.Close()
}
