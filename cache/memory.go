package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/types"
)

type memoryEntry struct {
	state     types.ScanState
	expiresAt time.Time
}

// Memory keeps session states in process. Expired entries are dropped lazily on
// read and by Sweep.
type Memory struct {
	cfg Config
	now func() time.Time

	mtx     sync.Mutex
	entries map[string]memoryEntry

	logger *zap.Logger
}

func newMemory(cfg Config) *Memory {
	return &Memory{
		cfg:     cfg,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
		logger:  cfg.Logger.With(zap.String("cache", "memory")),
	}
}

func (m *Memory) SessionState(_ context.Context, sessionID string) (types.ScanState, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	e, ok := m.entries[sessionID]
	if !ok {
		return types.ScanState{}, types.ErrSessionNotFound
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.entries, sessionID)
		return types.ScanState{}, types.ErrSessionNotFound
	}
	return e.state, nil
}

func (m *Memory) UpdateSessionState(_ context.Context, sessionID string, state types.ScanState) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.entries[sessionID] = memoryEntry{state: state, expiresAt: m.now().Add(m.cfg.SessionTTL)}
	return nil
}

func (m *Memory) DeleteSession(_ context.Context, sessionID string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	delete(m.entries, sessionID)
	return nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (m *Memory) Sweep() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	now := m.now()
	dropped := 0
	for id, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, id)
			dropped++
		}
	}
	if dropped > 0 {
		m.logger.Debug("swept expired sessions", zap.Int("count", dropped))
	}
	return dropped
}

func (m *Memory) Close() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.entries = make(map[string]memoryEntry)
	return nil
}
