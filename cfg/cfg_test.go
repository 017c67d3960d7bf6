package cfg

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestNew_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_MODE", "PORT", "SCAN_TIMEOUT", "CACHE_DB", "CACHE_ENGINE", "SESSION_TTL", "SWEEP_INTERVAL", "CACHE_IS_FLUSH"} {
		t.Setenv(k, "")
	}
	c, err := New()
	assert.NilError(t, err)
	assert.Equal(t, c.ServerMode, ModeDev)
	assert.Equal(t, c.Port, ":3000")
	assert.Equal(t, c.ScanTimeout, 10*time.Second)
	assert.Equal(t, c.CacheEngine, "memory")
	assert.Equal(t, c.CacheDB, 0)
	assert.Equal(t, c.CacheIsFlush, false)
	assert.Equal(t, c.SessionTTL, 30*time.Minute)
	assert.Equal(t, c.SweepInterval, time.Minute)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("SERVER_MODE", ModeProduction)
	t.Setenv("PORT", ":8080")
	t.Setenv("SCAN_TIMEOUT", "3s")
	t.Setenv("HONEYPOT_URL", "http://localhost:9999")
	t.Setenv("HONEYPOT_CHAIN_ID", "56")
	t.Setenv("CACHE_ENGINE", "redis")
	t.Setenv("CACHE_URI", "localhost:6379")
	t.Setenv("CACHE_DB", "2")
	t.Setenv("SESSION_TTL", "5m")

	c, err := New()
	assert.NilError(t, err)
	assert.Equal(t, c.ServerMode, ModeProduction)
	assert.Equal(t, c.Port, ":8080")
	assert.Equal(t, c.ScanTimeout, 3*time.Second)
	assert.Equal(t, c.HoneypotURL, "http://localhost:9999")
	assert.Equal(t, c.HoneypotChainID, "56")
	assert.Equal(t, c.CacheEngine, "redis")
	assert.Equal(t, c.CacheURL, "localhost:6379")
	assert.Equal(t, c.CacheDB, 2)
	assert.Equal(t, c.SessionTTL, 5*time.Minute)
}

func TestNew_InvalidCacheDB(t *testing.T) {
	t.Setenv("CACHE_DB", "first")
	_, err := New()
	assert.ErrorContains(t, err, "CACHE_DB")
}

func TestNew_NonPositiveDurations(t *testing.T) {
	tests := []struct {
		value string
	}{
		{value: "0s"},
		{value: "-5m"},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("SWEEP_INTERVAL", tc.value)
			t.Setenv("SESSION_TTL", tc.value)
			t.Setenv("SCAN_TIMEOUT", tc.value)
			c, err := New()
			assert.NilError(t, err)
			assert.Equal(t, c.SweepInterval, time.Minute)
			assert.Equal(t, c.SessionTTL, 30*time.Minute)
			assert.Equal(t, c.ScanTimeout, 10*time.Second)
		})
	}
}
