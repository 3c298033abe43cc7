package config

import (
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	// Addr is the HTTP listen address (e.g. ":8000").
	Addr string
	// GitHubToken is the optional bearer token for the GitHub API.
	// Anonymous access works but is rate limited to 60 requests/hour.
	GitHubToken string
	// StaticDir is where chart PNGs are written and served from.
	StaticDir string
	// CacheTTL is the report freshness window.
	CacheTTL time.Duration
	// CacheMaxEntries bounds the number of cached identities (LRU beyond it).
	CacheMaxEntries int
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		Addr:            GetEnv("SERVER_ADDR", ":8000"),
		GitHubToken:     GetEnv("GITHUB_TOKEN", ""),
		StaticDir:       GetEnv("STATIC_DIR", "static"),
		CacheTTL:        GetEnvDuration("CACHE_TTL", 300*time.Second),
		CacheMaxEntries: GetEnvInt("CACHE_MAX_ENTRIES", 256),
		GinMode:         GetEnv("GIN_MODE", "release"),
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("SERVER_ADDR must not be empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be greater than 0")
	}
	if c.CacheMaxEntries <= 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be greater than 0")
	}
	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}
	return nil
}
