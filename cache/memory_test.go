package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/types"
)

func TestMemory_SessionLifecycle(t *testing.T) {
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	m := newMemory(Config{SessionTTL: time.Minute, Logger: zap.NewNop()})
	m.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := m.SessionState(ctx, "a")
	assert.ErrorIs(t, err, types.ErrSessionNotFound)

	require.NoError(t, m.UpdateSessionState(ctx, "a", types.ScanningState(1, "0x1")))
	require.NoError(t, m.UpdateSessionState(ctx, "b", types.IdleState(0)))

	got, err := m.SessionState(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, types.StatusScanning, got.Status())

	now = now.Add(30 * time.Second)
	require.NoError(t, m.UpdateSessionState(ctx, "b", types.IdleState(0)))

	now = now.Add(45 * time.Second)
	_, err = m.SessionState(ctx, "a")
	assert.ErrorIs(t, err, types.ErrSessionNotFound, "a expired")
	_, err = m.SessionState(ctx, "b")
	assert.NoError(t, err, "b was refreshed")

	now = now.Add(time.Hour)
	assert.Equal(t, 1, m.Sweep())
	assert.Empty(t, m.entries)
}

func TestMemory_Delete(t *testing.T) {
	m := newMemory(Config{SessionTTL: time.Minute, Logger: zap.NewNop()})
	ctx := context.Background()
	require.NoError(t, m.UpdateSessionState(ctx, "a", types.IdleState(0)))
	require.NoError(t, m.DeleteSession(ctx, "a"))
	_, err := m.SessionState(ctx, "a")
	assert.ErrorIs(t, err, types.ErrSessionNotFound)
}
