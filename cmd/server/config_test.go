package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"knowyourreps-backend/internal/photos"
	"knowyourreps-backend/internal/scrapers/wikipedia"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, "public/politicians.json", cfg.Dataset)
	require.Equal(t, wikipedia.DefaultBaseURL, cfg.Wikipedia.BaseURL)
	require.Equal(t, photos.DefaultVariantDelay, cfg.variantDelay())
	require.Equal(t, photos.SchedulerOptions{
		LoadStagger:    photos.DefaultLoadStagger,
		VisibleStagger: photos.DefaultVisibleStagger,
	}, cfg.schedulerOptions())
}

func TestReadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	err := os.WriteFile(path, []byte(`{
		// served from the repo checkout
		port: 9090,
		dataset: "data/officials.json",
		wikipedia: {rps: 2, timeout_seconds: 3},
		photos: {variant_delay_ms: 50},
	}`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "data/officials.json", cfg.Dataset)

	opts := cfg.wikipediaOptions()
	require.Equal(t, 2.0, opts.RequestsPerSecond)
	require.Equal(t, 3*time.Second, opts.Timeout)
	require.Equal(t, wikipedia.DefaultUserAgent, opts.UserAgent)
	require.Equal(t, 50*time.Millisecond, cfg.variantDelay())
	require.Equal(t, photos.DefaultLoadStagger, cfg.schedulerOptions().LoadStagger)
}
