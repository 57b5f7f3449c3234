package container

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/qboard/qboard/cmd/qboard/repository"
	"github.com/qboard/qboard/cmd/qboard/search"
	"github.com/qboard/qboard/cmd/qboard/service"
	"github.com/qboard/qboard/common/bootstrap"
	"github.com/qboard/qboard/common/middleware"
	"github.com/qboard/qboard/common/ratelimit"
	"github.com/qboard/qboard/common/redis"
)

// Container wires repositories, the search engine, and services
type Container struct {
	Components *bootstrap.Components

	Redis       *redis.Client
	RateLimiter *ratelimit.RateLimiter

	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	TagRepo      *repository.TagRepository

	Engine *search.Engine

	QuestionService *service.QuestionService
	AnswerService   *service.AnswerService
	TagService      *service.TagService
}

// NewContainer builds the full dependency graph from bootstrapped components
func NewContainer(ctx context.Context, components *bootstrap.Components) (*Container, error) {
	cfg := components.Config
	log := components.Logger

	c := &Container{Components: components}

	// Redis is only needed for rate limiting. When limiting is disabled
	// the service runs without a Redis connection at all.
	if cfg.RateLimit.Enabled {
		redisClient, err := redis.New(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect redis: %w", err)
		}
		c.Redis = redisClient
		c.RateLimiter = ratelimit.NewRateLimiter(redisClient.Client, ratelimit.Limits{
			GlobalPerWindow: cfg.RateLimit.GlobalPerMin,
			WritePerWindow:  cfg.RateLimit.WritePerMin,
			WindowSeconds:   cfg.RateLimit.WindowSeconds,
		}, log)
	}

	c.QuestionRepo = repository.NewQuestionRepository(components.DB)
	c.AnswerRepo = repository.NewAnswerRepository(components.DB)
	c.TagRepo = repository.NewTagRepository(components.DB)

	c.Engine = search.NewEngine(c.QuestionRepo, c.TagRepo, log)

	c.TagService = service.NewTagService(c.TagRepo, components.Cache, cfg.Cache.DefaultTTL, log)
	c.QuestionService = service.NewQuestionService(c.QuestionRepo, c.TagService, c.Engine, log)
	c.AnswerService = service.NewAnswerService(c.AnswerRepo, c.QuestionRepo, log)

	return c, nil
}

// WriteRateLimit returns the per-client write limiter middleware, or a
// pass-through when rate limiting is disabled.
func (c *Container) WriteRateLimit() echo.MiddlewareFunc {
	if c.RateLimiter == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return middleware.WriteRateLimitMiddleware(c.RateLimiter)
}

// Close releases resources owned by the container
func (c *Container) Close() error {
	if c.Redis != nil {
		return c.Redis.Close()
	}
	return nil
}
