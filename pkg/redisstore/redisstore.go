// Package redisstore wraps the redis client used for request throttling.
package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// New connects to redis using a URL (redis://host:port/db) and verifies
// the connection with a ping.
func New(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// IncrWindow increments a fixed-window counter and returns its new value.
// The window TTL is set when the counter is created.
func IncrWindow(ctx context.Context, client *redis.Client, key string, window time.Duration) (int64, error) {
	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
