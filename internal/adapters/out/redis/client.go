// Package redis keeps per-user session state in Redis: supervisor carts and
// resolved profiles.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConnectionSettings describes how to reach Redis.
type ConnectionSettings struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a client and verifies the server answers a PING.
func Connect(ctx context.Context, settings ConnectionSettings) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", settings.Addr, err)
	}

	return client, nil
}
