package config

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("WSJ_COOKIE", "session=abc")

	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "8082", cfg.HTTPServer.Port)
	assert.Equal(t, 5*time.Minute, cfg.HTTPServer.CacheTTL)
	assert.Equal(t, 3*time.Minute, cfg.HTTPServer.Timeout)
	assert.Equal(t, 20*time.Second, cfg.Fetcher.Timeout)
	assert.Equal(t, "https://www.wsj.com/market-data/quotes/fx", cfg.Fetcher.URL)
	assert.Equal(t, "session=abc", cfg.Fetcher.Cookie)
	assert.Equal(t, 50, cfg.Fetcher.Rows)
	assert.Equal(t, 6, cfg.Fetcher.Concurrency)
	assert.Empty(t, cfg.Redis.Host)
	assert.Equal(t, "fx_closes_fetched", cfg.Redis.Channel)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("FETCHER_CONCURRENCY", "3")
	t.Setenv("HTTP_CACHE_TTL", "30s")

	cfg := NewConfig()
	assert.Equal(t, "9000", cfg.HTTPServer.Port)
	assert.Equal(t, 3, cfg.Fetcher.Concurrency)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.CacheTTL)
}

func TestConfig_LogValueHidesCookie(t *testing.T) {
	cfg := &Config{Fetcher: Fetcher{Cookie: "secret-session"}}

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("starting", "config", cfg)

	assert.NotContains(t, buf.String(), "secret-session")
	assert.Contains(t, buf.String(), "cookie_set=true")
}

func TestNewConfig_WriteTimeoutCoversFullBatch(t *testing.T) {
	cfg := NewConfig()

	// 42 symbols at 6 per wave
	waves := (42 + cfg.Fetcher.Concurrency - 1) / cfg.Fetcher.Concurrency
	assert.Greater(t, cfg.HTTPServer.Timeout, time.Duration(waves)*cfg.Fetcher.Timeout)
}
