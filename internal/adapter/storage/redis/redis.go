package redis

import (
	"context"
	"fmt"

	"mobile-wallet-core/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient creates a Redis client and verifies connectivity. The
// client fails fast: no offline queue and no per-request retries, so
// a dead ephemeral store surfaces immediately as INTERNAL.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	opts.MaxRetries = -1 // disable retries

	client := goredis.NewClient(opts)

	// Verify connectivity
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", opts.Addr).
		Int("db", opts.DB).
		Msg("Redis connection established")

	return client, nil
}
