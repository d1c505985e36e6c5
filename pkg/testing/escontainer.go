package testing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DefaultESImage matches the geo_point and _geo_distance features the geo index relies on.
// ES_TEST_IMAGE overrides it.
const DefaultESImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"

// ESContainer is a single-node Elasticsearch with security disabled, terminated on test cleanup.
type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// Addresses returns the node address in the shape the es client config expects.
func (c *ESContainer) Addresses() []string {
	return []string{c.Address}
}

func NewESContainer(ctx context.Context, tb testing.TB) *ESContainer {
	tb.Helper()

	image := os.Getenv("ES_TEST_IMAGE")
	if image == "" {
		image = DefaultESImage
	}

	esContainer, err := elasticsearch.Run(ctx,
		image,
		elasticsearch.WithPassword(""),
		testcontainers.WithEnv(map[string]string{
			"xpack.security.enabled": "false",
			"ES_JAVA_OPTS":           "-Xms512m -Xmx512m",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/_cluster/health?wait_for_status=yellow").
				WithPort("9200").
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container %s: %v", image, err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(esContainer); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	endpoint, err := esContainer.PortEndpoint(ctx, "9200/tcp", "http")
	if err != nil {
		tb.Fatalf("failed to get elasticsearch endpoint: %v", err)
	}
	tb.Logf("elasticsearch %s listening on %s", image, endpoint)

	return &ESContainer{
		Container: esContainer,
		Address:   endpoint,
	}
}
