package redis

import (
	"context"
	"fmt"
	"time"

	"card-consumption-assistant/config"

	goredis "github.com/redis/go-redis/v9"
)

var client *goredis.Client

// Connect creates the shared client and pings the server.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	c := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	client = c
	return c, nil
}

// Client returns the client created by Connect, or nil.
func Client() *goredis.Client {
	return client
}

// Disconnect closes the shared client.
func Disconnect() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
