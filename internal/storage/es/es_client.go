package es

import (
	"errors"

	"github.com/elastic/go-elasticsearch/v8"
)

// DefaultIndexName is used when ClientConfig.IndexName is empty.
const DefaultIndexName = "attractions"

var ErrNoAddresses = errors.New("elasticsearch: at least one address is required")

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

// Validate checks the config after defaults are applied.
func (c ClientConfig) Validate() error {
	if len(c.Addresses) == 0 {
		return ErrNoAddresses
	}
	return nil
}

func (c ClientConfig) withDefaults() ClientConfig {
	if c.IndexName == "" {
		c.IndexName = DefaultIndexName
	}
	return c
}

// Index returns the configured index name or DefaultIndexName.
func (c ClientConfig) Index() string {
	return c.withDefaults().IndexName
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}
	// basic auth only when both halves are set; a local dev node runs with security off
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
