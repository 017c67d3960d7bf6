// Package server implements the HTTP handlers of the scanner on top of a
// session registry.
package server

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/cache"
	"github.com/gigglywizard/scanner-backend/external"
	"github.com/gigglywizard/scanner-backend/landing"
	"github.com/gigglywizard/scanner-backend/render"
	"github.com/gigglywizard/scanner-backend/scanner"
)

type Config struct {
	HoneypotURL     string
	HoneypotChainID string
	ScanTimeout     time.Duration

	ExplorerURL string

	CacheAdapter  cache.Adapter
	CacheURL      string
	CacheDB       int
	CachePassword string
	CacheIsFlush  bool

	SessionTTL time.Duration

	// Honeypot replaces the HTTP client built from HoneypotURL when set.
	Honeypot scanner.Honeypot

	Logger *zap.Logger
}

// Server instance kind of a router, which receive request from client (browser)
// and drive the scanner of the caller's session
type Server struct {
	logger *zap.Logger

	registry   *scanner.Registry
	renderer   *render.Renderer
	events     *Events
	store      cache.Client
	page       landing.Page
	sessionTTL time.Duration
}

func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	cfg.Logger.Info("Create new server instance",
		zap.String("honeypotURL", cfg.HoneypotURL),
		zap.String("cacheAdapter", string(cfg.CacheAdapter)),
		zap.Duration("sessionTTL", cfg.SessionTTL))

	store, err := cache.New(cache.Config{
		Adapter:    cfg.CacheAdapter,
		URL:        cfg.CacheURL,
		DB:         cfg.CacheDB,
		Password:   cfg.CachePassword,
		IsFlush:    cfg.CacheIsFlush,
		SessionTTL: cfg.SessionTTL,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	client := cfg.Honeypot
	if client == nil {
		client = external.NewHoneypotClient(external.HoneypotConfig{
			BaseURL: cfg.HoneypotURL,
			ChainID: cfg.HoneypotChainID,
			Timeout: cfg.ScanTimeout,
			Logger:  cfg.Logger,
		})
	}

	renderer := render.New(cfg.ExplorerURL)
	events := NewEvents(renderer, cfg.Logger)
	registry, err := scanner.NewRegistry(scanner.Config{
		Client:     client,
		Store:      store,
		Observer:   events,
		Timeout:    cfg.ScanTimeout,
		SessionTTL: cfg.SessionTTL,
		Logger:     cfg.Logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Server{
		logger:     cfg.Logger,
		registry:   registry,
		renderer:   renderer,
		events:     events,
		store:      store,
		page:       landing.Default(),
		sessionTTL: cfg.SessionTTL,
	}, nil
}

// Run expires idle sessions every interval until ctx is done.
func (s *Server) Run(ctx context.Context, interval time.Duration) {
	s.registry.Run(ctx, interval)
}

// CloseStreams ends every open event stream.
func (s *Server) CloseStreams() {
	s.events.Close()
}

// Close ends every open event stream and releases the session store.
func (s *Server) Close() error {
	s.CloseStreams()
	return s.store.Close()
}
