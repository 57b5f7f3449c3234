package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/qboard/qboard/common/config"
	"github.com/qboard/qboard/common/logger"
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client with connection setup and health checks
type Client struct {
	*redis.Client
	log *logger.Logger
}

// New creates a Redis client and verifies the connection
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("redis connected", "addr", cfg.RedisAddr(), "db", cfg.Redis.DB)

	return &Client{
		Client: client,
		log:    log,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	c.log.Info("closing redis connection")
	return c.Client.Close()
}

// Health checks Redis health
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return c.Client.Ping(ctx).Err()
}
