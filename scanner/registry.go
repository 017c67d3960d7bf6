package scanner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/types"
)

const (
	defaultSessionTTL    = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

type sessionEntry struct {
	scanner  *Scanner
	lastSeen time.Time
}

// Registry hands out one Scanner per session and forgets sessions left idle for
// longer than SessionTTL.
type Registry struct {
	cfg Config
	now func() time.Time

	mtx      sync.Mutex
	sessions map[string]*sessionEntry

	logger *zap.Logger
}

func NewRegistry(cfg Config) (*Registry, error) {
	if cfg.Client == nil {
		return nil, errors.New("missing honeypot client")
	}
	if cfg.Store == nil {
		return nil, errors.New("missing session store")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	return &Registry{
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
		logger:   cfg.Logger.With(zap.String("component", "registry")),
	}, nil
}

func (r *Registry) NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID rejects ids this registry could not have issued.
func (r *Registry) ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Scanner returns the scanner of sessionID, creating it on first use. A session
// whose state survived in the store resumes from its last sequence number.
func (r *Registry) Scanner(ctx context.Context, sessionID string) *Scanner {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if e, ok := r.sessions[sessionID]; ok {
		e.lastSeen = r.now()
		return e.scanner
	}

	var seq uint64
	state, err := r.cfg.Store.SessionState(ctx, sessionID)
	switch {
	case err == nil:
		seq = state.Seq()
	case !errors.Is(err, types.ErrSessionNotFound):
		r.logger.Warn("cannot read stored session state", zap.String("session", sessionID), zap.Error(err))
	}
	s := newScanner(sessionID, seq, r.cfg)
	r.sessions[sessionID] = &sessionEntry{scanner: s, lastSeen: r.now()}
	return s
}

func (r *Registry) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than SessionTTL.
func (r *Registry) Sweep(ctx context.Context) []string {
	r.mtx.Lock()
	now := r.now()
	var expired []string
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.cfg.SessionTTL {
			expired = append(expired, id)
			delete(r.sessions, id)
		}
	}
	r.mtx.Unlock()

	for _, id := range expired {
		if err := r.cfg.Store.DeleteSession(ctx, id); err != nil {
			r.logger.Warn("cannot delete session state", zap.String("session", id), zap.Error(err))
		}
		if r.cfg.Observer != nil {
			r.cfg.Observer.OnSessionClosed(id)
		}
	}
	if sweeper, ok := r.cfg.Store.(interface{ Sweep() int }); ok {
		sweeper.Sweep()
	}
	if len(expired) > 0 {
		r.logger.Debug("sessions expired", zap.Int("count", len(expired)))
	}
	return expired
}

// Run sweeps on every interval until ctx is done. A non-positive interval falls
// back to one minute.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}
