// Package cfg
package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	ModeDev        = "dev"
	ModeProduction = "prod"

	ServerVersion = "1.0.0"
)

type ScannerConfig struct {
	ServerMode string
	Port       string

	LogLevel  string
	SentryDSN string

	HoneypotURL     string
	HoneypotChainID string
	ScanTimeout     time.Duration

	ExplorerURL string

	CacheEngine   string
	CacheURL      string
	CacheDB       int
	CachePassword string
	CacheIsFlush  bool

	SessionTTL    time.Duration
	SweepInterval time.Duration
}

func New() (ScannerConfig, error) {
	scanTimeoutStr := os.Getenv("SCAN_TIMEOUT")
	scanTimeout, err := time.ParseDuration(scanTimeoutStr)
	if err != nil || scanTimeout <= 0 {
		scanTimeout = 10 * time.Second
	}

	var cacheDB int
	if cacheDBStr := os.Getenv("CACHE_DB"); cacheDBStr != "" {
		cacheDB, err = strconv.Atoi(cacheDBStr)
		if err != nil {
			return ScannerConfig{}, fmt.Errorf("invalid CACHE_DB %q: %w", cacheDBStr, err)
		}
	}

	cacheIsFlushStr := os.Getenv("CACHE_IS_FLUSH")
	cacheIsFlush, err := strconv.ParseBool(cacheIsFlushStr)
	if err != nil {
		cacheIsFlush = false
	}

	sessionTTLStr := os.Getenv("SESSION_TTL")
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil || sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}
	sweepIntervalStr := os.Getenv("SWEEP_INTERVAL")
	sweepInterval, err := time.ParseDuration(sweepIntervalStr)
	if err != nil || sweepInterval <= 0 {
		sweepInterval = time.Minute
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":3000"
	}
	serverMode := os.Getenv("SERVER_MODE")
	if serverMode == "" {
		serverMode = ModeDev
	}
	cacheEngine := os.Getenv("CACHE_ENGINE")
	if cacheEngine == "" {
		cacheEngine = "memory"
	}

	cfg := ScannerConfig{
		ServerMode: serverMode,
		Port:       port,
		LogLevel:   os.Getenv("LOG_LEVEL"),
		SentryDSN:  os.Getenv("SENTRY_DSN"),

		HoneypotURL:     os.Getenv("HONEYPOT_URL"),
		HoneypotChainID: os.Getenv("HONEYPOT_CHAIN_ID"),
		ScanTimeout:     scanTimeout,

		ExplorerURL: os.Getenv("ETHERSCAN_URL"),

		CacheEngine:   cacheEngine,
		CacheURL:      os.Getenv("CACHE_URI"),
		CacheDB:       cacheDB,
		CachePassword: os.Getenv("CACHE_PASSWORD"),
		CacheIsFlush:  cacheIsFlush,

		SessionTTL:    sessionTTL,
		SweepInterval: sweepInterval,
	}

	return cfg, nil
}
