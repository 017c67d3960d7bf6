package scanner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/cache"
	"github.com/gigglywizard/scanner-backend/types"
)

func TestNewRegistry_RequiresCollaborators(t *testing.T) {
	_, err := NewRegistry(Config{})
	assert.Error(t, err)
	_, err = NewRegistry(Config{Client: newFakeHoneypot()})
	assert.Error(t, err)
}

func TestRegistry_SameSessionSameScanner(t *testing.T) {
	reg := setupRegistry(t, newFakeHoneypot(), nil)
	ctx := context.Background()
	a := reg.Scanner(ctx, "a")
	assert.Same(t, a, reg.Scanner(ctx, "a"))
	assert.NotSame(t, a, reg.Scanner(ctx, "b"))
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_SessionIDs(t *testing.T) {
	reg := setupRegistry(t, newFakeHoneypot(), nil)
	id := reg.NewSessionID()
	assert.True(t, reg.ValidSessionID(id))
	assert.NotEqual(t, id, reg.NewSessionID())
	assert.False(t, reg.ValidSessionID("../../etc/passwd"))
	assert.False(t, reg.ValidSessionID(""))
}

func TestRegistry_ResumesSequenceFromStore(t *testing.T) {
	store, err := cache.New(cache.Config{SessionTTL: time.Hour, Logger: zap.NewNop()})
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.UpdateSessionState(ctx, "a", types.FailedState(41, "0x1", types.ScanFailedMessage)))

	hp := newFakeHoneypot()
	hp.answers["0x2"] = result{report: &types.TokenReport{}}
	reg, err := NewRegistry(Config{Client: hp, Store: store})
	require.NoError(t, err)

	s := reg.Scanner(ctx, "a")
	state, err := s.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.StatusFailed, state.Status())

	_, err = s.Scan(ctx, "0x2")
	require.NoError(t, err)
	state, err = s.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), state.Seq())
}

func TestRegistry_Sweep(t *testing.T) {
	obs := &recordingObserver{}
	reg := setupRegistry(t, newFakeHoneypot(), obs)
	now := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }
	ctx := context.Background()

	reg.Scanner(ctx, "old")
	now = now.Add(45 * time.Second)
	reg.Scanner(ctx, "fresh")
	now = now.Add(30 * time.Second)

	expired := reg.Sweep(ctx)
	assert.Equal(t, []string{"old"}, expired)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, []string{"old"}, obs.closed)
}

func TestRegistry_RunStopsWithContext(t *testing.T) {
	reg := setupRegistry(t, newFakeHoneypot(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		reg.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRegistry_RunNonPositiveInterval(t *testing.T) {
	reg := setupRegistry(t, newFakeHoneypot(), nil)
	for _, interval := range []time.Duration{0, -time.Second} {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			assert.NotPanics(t, func() { reg.Run(ctx, interval) })
		}()
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	}
}
