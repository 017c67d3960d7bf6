// Package scanner drives one honeypot scan per request and keeps the resulting
// state of each visitor session.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/cache"
	"github.com/gigglywizard/scanner-backend/types"
)

// Honeypot is the upstream risk API.
type Honeypot interface {
	IsHoneypot(ctx context.Context, address string) (*types.TokenReport, error)
}

// Observer is told about every state a session moves into.
type Observer interface {
	OnStateChange(sessionID string, state types.ScanState)
	OnSessionClosed(sessionID string)
}

type Config struct {
	Client   Honeypot
	Store    cache.Client
	Observer Observer

	// Timeout bounds one upstream call; zero leaves it to the client.
	Timeout    time.Duration
	SessionTTL time.Duration

	Logger *zap.Logger
}

// Scanner is the scan state machine of one session. Every scan takes the next
// sequence number and a response is applied only while its number is current, so
// a slow answer can never overwrite the result of a newer request.
type Scanner struct {
	sessionID string
	cfg       Config

	mtx sync.Mutex
	seq uint64

	logger *zap.Logger
}

func newScanner(sessionID string, seq uint64, cfg Config) *Scanner {
	return &Scanner{
		sessionID: sessionID,
		cfg:       cfg,
		seq:       seq,
		logger:    cfg.Logger.With(zap.String("session", sessionID)),
	}
}

func (s *Scanner) SessionID() string {
	return s.sessionID
}

// Scan fetches the report of address after trimming surrounding whitespace; a
// blank address is types.ErrEmptyAddress and makes no call. Upstream failures leave the session in the
// failed state with types.ScanFailedMessage and are returned wrapped; a response
// that lost the race to a newer scan returns types.ErrStaleScan.
func (s *Scanner) Scan(ctx context.Context, address string) (*types.TokenReport, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, types.ErrEmptyAddress
	}
	lgr := s.logger.With(zap.String("address", address))

	seq, err := s.begin(ctx, address)
	if err != nil {
		return nil, err
	}

	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	report, scanErr := s.cfg.Client.IsHoneypot(callCtx, address)

	// the outcome is recorded even if the caller went away
	finishCtx := context.WithoutCancel(ctx)
	if scanErr != nil {
		lgr.Warn("scan failed", zap.Uint64("seq", seq), zap.Error(scanErr))
		if err := s.finish(finishCtx, types.FailedState(seq, address, types.ScanFailedMessage)); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("scan %s: %w", address, scanErr)
	}
	if err := s.finish(finishCtx, types.SucceededState(seq, address, report)); err != nil {
		return nil, err
	}
	lgr.Debug("scan succeeded", zap.Uint64("seq", seq))
	return report, nil
}

func (s *Scanner) begin(ctx context.Context, address string) (uint64, error) {
	s.mtx.Lock()
	s.seq++
	seq := s.seq
	state := types.ScanningState(seq, address)
	err := s.store(ctx, state)
	s.mtx.Unlock()
	if err != nil {
		return 0, err
	}
	s.notify(state)
	return seq, nil
}

func (s *Scanner) finish(ctx context.Context, state types.ScanState) error {
	s.mtx.Lock()
	if state.Seq() != s.seq {
		current := s.seq
		s.mtx.Unlock()
		s.logger.Info("discard stale scan result",
			zap.Uint64("seq", state.Seq()),
			zap.Uint64("current", current),
			zap.String("status", string(state.Status())))
		return fmt.Errorf("seq %d behind %d: %w", state.Seq(), current, types.ErrStaleScan)
	}
	err := s.store(ctx, state)
	s.mtx.Unlock()
	if err != nil {
		return err
	}
	s.notify(state)
	return nil
}

// store must be called with mtx held.
func (s *Scanner) store(ctx context.Context, state types.ScanState) error {
	if err := s.cfg.Store.UpdateSessionState(ctx, s.sessionID, state); err != nil {
		s.logger.Error("cannot store scan state", zap.Error(err))
		return err
	}
	return nil
}

// notify runs without mtx so a slow observer cannot stall the session. Observers
// may see transitions out of order and should keep the highest Seq.
func (s *Scanner) notify(state types.ScanState) {
	if s.cfg.Observer != nil {
		s.cfg.Observer.OnStateChange(s.sessionID, state)
	}
}

// State returns the current state, Idle when nothing was scanned yet or the
// stored state expired.
func (s *Scanner) State(ctx context.Context) (types.ScanState, error) {
	state, err := s.cfg.Store.SessionState(ctx, s.sessionID)
	if errors.Is(err, types.ErrSessionNotFound) {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		return types.IdleState(s.seq), nil
	}
	if err != nil {
		return types.ScanState{}, err
	}
	return state, nil
}

// Reset clears the session back to Idle. A scan still in flight becomes stale.
func (s *Scanner) Reset(ctx context.Context) error {
	s.mtx.Lock()
	s.seq++
	state := types.IdleState(s.seq)
	err := s.store(ctx, state)
	s.mtx.Unlock()
	if err != nil {
		return err
	}
	s.notify(state)
	return nil
}
