// Package cache
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/types"
)

const (
	KeySessionState = "#session#%s#state"
)

type Redis struct {
	cfg    Config
	client *redis.Client

	logger *zap.Logger
}

func (c *Redis) SessionState(ctx context.Context, sessionID string) (types.ScanState, error) {
	result, err := c.client.Get(ctx, fmt.Sprintf(KeySessionState, sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return types.ScanState{}, types.ErrSessionNotFound
	}
	if err != nil {
		return types.ScanState{}, err
	}
	var state types.ScanState
	if err := json.Unmarshal([]byte(result), &state); err != nil {
		c.logger.Warn("cannot decode session state", zap.String("session", sessionID), zap.Error(err))
		return types.ScanState{}, err
	}
	return state, nil
}

// UpdateSessionState also refreshes the session expiry.
func (c *Redis) UpdateSessionState(ctx context.Context, sessionID string, state types.ScanState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, fmt.Sprintf(KeySessionState, sessionID), string(data), c.cfg.SessionTTL).Err(); err != nil {
		c.logger.Warn("cannot store session state", zap.String("session", sessionID), zap.Error(err))
		return err
	}
	return nil
}

func (c *Redis) DeleteSession(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, fmt.Sprintf(KeySessionState, sessionID)).Err()
}

func (c *Redis) Close() error {
	return c.client.Close()
}
