package cache

import (
	"context"
	"crypto/tls"

	"github.com/modelday/modelday/internal/config"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

// Pool sized for the API's request concurrency; role-model reads are the only
// cached path.
const defaultPoolSize = 10

func buildOptions(cfg *config.Config) *redis.Options {
	opts := &redis.Options{
		ClientName: "modelday-api",
		Addr:       cfg.Redis.Addr,
		Password:   cfg.Redis.Password,
		DB:         cfg.Redis.DB,
		PoolSize:   cfg.Redis.PoolSize,
	}
	if opts.PoolSize <= 0 {
		opts.PoolSize = defaultPoolSize
	}

	if cfg.Redis.EnableTLS {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	return opts
}

func New(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(buildOptions(cfg))

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// RegisterOpenTelemetryPlugin registers the OpenTelemetry plugin for Redis.
// Call after telemetry.SetupTracing() so the global tracer provider is set.
func RegisterOpenTelemetryPlugin(rdb *redis.Client) error {
	return redisotel.InstrumentTracing(rdb)
}

func Close(rdb *redis.Client) error {
	return rdb.Close()
}
