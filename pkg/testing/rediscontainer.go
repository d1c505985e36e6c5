package testing

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisContainer represents a running Redis test container
type RedisContainer struct {
	Container testcontainers.Container
	Addr      string
}

// NewRedisContainer starts a Redis test container and terminates it on test cleanup
func NewRedisContainer(ctx context.Context, tb testing.TB) *RedisContainer {
	tb.Helper()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		tb.Fatalf("failed to start redis container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			tb.Logf("failed to terminate redis container: %v", err)
		}
	})

	endpoint, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		tb.Fatalf("failed to get redis endpoint: %v", err)
	}

	return &RedisContainer{
		Container: redisContainer,
		Addr:      endpoint,
	}
}
