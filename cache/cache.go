// Package cache
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/types"
)

type Adapter string

const (
	MemoryAdapter Adapter = "memory"
	RedisAdapter  Adapter = "redis"
)

type Config struct {
	Adapter  Adapter
	URL      string
	DB       int
	Password string

	IsFlush bool

	// SessionTTL bounds how long an untouched session state is kept.
	SessionTTL time.Duration

	Logger *zap.Logger
}

// Client stores the transient scan state of visitor sessions. Nothing stored here
// outlives SessionTTL.
type Client interface {
	SessionState(ctx context.Context, sessionID string) (types.ScanState, error)
	UpdateSessionState(ctx context.Context, sessionID string, state types.ScanState) error
	DeleteSession(ctx context.Context, sessionID string) error

	Close() error
}

func New(cfg Config) (Client, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	switch cfg.Adapter {
	case MemoryAdapter, "":
		return newMemory(cfg), nil
	case RedisAdapter:
		return newRedis(cfg)
	}
	return nil, errors.New("invalid cache config")
}

func newRedis(cfg Config) (Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.URL,
		DB:       cfg.DB,
		Password: cfg.Password,
	})

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	if cfg.IsFlush {
		msg, err := redisClient.FlushDB(context.Background()).Result()
		if err != nil || msg != "OK" {
			return nil, err
		}
	}

	logger := cfg.Logger.With(zap.String("cache", "redis"))
	client := &Redis{
		client: redisClient,
		logger: logger,
	}
	client.cfg = cfg
	return client, nil
}
