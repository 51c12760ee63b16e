package utils

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cratenotes/cratenotes/config"
)

// NewRedis opens a redis client from configuration. The handle is
// passed to whoever needs it; there is no package-level singleton.
func NewRedis(cfg config.AppConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	// Validate connectivity up front but tolerate failure; callers
	// treat the cache as best-effort.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil && Sugar != nil {
		Sugar.Warnf("redis unreachable, enrichment cache degraded: %v", err)
	}
	return client
}
