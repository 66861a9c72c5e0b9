package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"knowyourreps-backend/internal/photos"
	"knowyourreps-backend/internal/scrapers/wikipedia"
	"knowyourreps-backend/lib/configutil"
)

type WikipediaConfig struct {
	BaseURL        string  `json:"base_url"`
	UserAgent      string  `json:"user_agent"`
	TimeoutSeconds int     `json:"timeout_seconds"`
	RPS            float64 `json:"rps"`
}

type PhotosConfig struct {
	VariantDelayMs   int `json:"variant_delay_ms"`
	LoadStaggerMs    int `json:"load_stagger_ms"`
	VisibleStaggerMs int `json:"visible_stagger_ms"`
}

type Config struct {
	Port      int             `json:"port"`
	Dataset   string          `json:"dataset"`
	StaticDir string          `json:"static_dir"`
	Wikipedia WikipediaConfig `json:"wikipedia"`
	Photos    PhotosConfig    `json:"photos"`
	// ReloadCron re-reads the dataset on a schedule when set, ex. "@every 1h".
	ReloadCron string `json:"reload_cron"`
}

func millis(ms int, fallback time.Duration) time.Duration {
	if ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func (c Config) withDefaults() Config {
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.Dataset == "" {
		c.Dataset = "public/politicians.json"
	}
	if c.Wikipedia.BaseURL == "" {
		c.Wikipedia.BaseURL = wikipedia.DefaultBaseURL
	}
	if c.Wikipedia.UserAgent == "" {
		c.Wikipedia.UserAgent = wikipedia.DefaultUserAgent
	}
	if c.Wikipedia.TimeoutSeconds == 0 {
		c.Wikipedia.TimeoutSeconds = 10
	}
	if c.Wikipedia.RPS == 0 {
		c.Wikipedia.RPS = 5
	}
	return c
}

func (c Config) wikipediaOptions() wikipedia.Options {
	return wikipedia.Options{
		BaseURL:           c.Wikipedia.BaseURL,
		UserAgent:         c.Wikipedia.UserAgent,
		Timeout:           time.Duration(c.Wikipedia.TimeoutSeconds) * time.Second,
		RequestsPerSecond: c.Wikipedia.RPS,
	}
}

func (c Config) variantDelay() time.Duration {
	return millis(c.Photos.VariantDelayMs, photos.DefaultVariantDelay)
}

func (c Config) schedulerOptions() photos.SchedulerOptions {
	return photos.SchedulerOptions{
		LoadStagger:    millis(c.Photos.LoadStaggerMs, photos.DefaultLoadStagger),
		VisibleStagger: millis(c.Photos.VisibleStaggerMs, photos.DefaultVisibleStagger),
	}
}

// ReadConfig reads the config at path, a missing file means every default applies.
func ReadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("config not found, using defaults", "path", path)
		return Config{}.withDefaults(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}
