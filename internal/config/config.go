// Package config loads all service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/ponmalar/snackstore/pkg/db"
	"github.com/ponmalar/snackstore/pkg/redisdb"
)

// Storage backends the blob port can run on.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config is the full service configuration, processed with the SNACKSTORE
// prefix (e.g. SNACKSTORE_ADDR, SNACKSTORE_STORE_BACKEND).
type Config struct {
	Addr        string `default:":8080"`
	Environment string `default:"development"`

	// StoreBackend selects the blob store: memory, postgres or redis.
	StoreBackend string `split_words:"true" default:"memory"`

	// CatalogPath overrides the embedded product seed with a JSON file.
	CatalogPath string `split_words:"true"`

	Postgres db.PostgresConfig
	Redis    redisdb.Config
}

// Load processes the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("snackstore", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	switch cfg.StoreBackend {
	case BackendMemory, BackendPostgres, BackendRedis:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	return cfg, nil
}
