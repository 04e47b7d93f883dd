package config

import "time"

// LayoutCacheConfig controls the Redis cache in front of the public layout
// routes.  Layout responses depend only on their query string, so entries
// can live long.
type LayoutCacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string // Redis key namespace
	MaxBodyBytes int    // larger responses are served but not stored; 0 stores any size
}

// LoadLayoutCacheConfig reads the LAYOUT_CACHE_* variables.
func LoadLayoutCacheConfig() LayoutCacheConfig {
	cfg := LayoutCacheConfig{
		Enabled:      envBool("LAYOUT_CACHE_ENABLED", true),
		TTL:          envDur("LAYOUT_CACHE_TTL", time.Hour),
		Prefix:       envStr("LAYOUT_CACHE_PREFIX", "layout"),
		MaxBodyBytes: envInt("LAYOUT_CACHE_MAX_BODY_BYTES", 256<<10),
	}
	if cfg.TTL <= 0 {
		cfg.Enabled = false
	}
	if cfg.MaxBodyBytes < 0 {
		cfg.MaxBodyBytes = 0
	}
	return cfg
}
