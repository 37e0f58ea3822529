// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package config

import "time"

// Config holds all application configuration, loaded from built-in
// defaults, an optional YAML file, and environment variables, in that
// order of increasing precedence (see LoadWithKoanf).
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Engine    EngineConfig    `koanf:"engine"`
	Cache     CacheConfig     `koanf:"cache"`
	Predictor PredictorConfig `koanf:"predictor"`
	Logging   LoggingConfig   `koanf:"logging"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	CORSOrigins  []string      `koanf:"cors_origins"`
}

// EngineConfig configures recommendation generation limits and
// defaults independent of any one candidate item (spec §4.7, §8).
type EngineConfig struct {
	// DefaultCount is opts.Count when a request omits it.
	DefaultCount int `koanf:"default_count"`
	// MaxCount caps opts.Count regardless of what a request asks for.
	MaxCount int `koanf:"max_count"`
	// DefaultMinScore is opts.MinScore when a request omits it.
	DefaultMinScore float64 `koanf:"default_min_score"`
	// DefaultDiversityFactor is opts.DiversityFactor when a request omits it.
	DefaultDiversityFactor float64 `koanf:"default_diversity_factor"`
}

// CacheConfig configures the result cache backend.
type CacheConfig struct {
	Dir string        `koanf:"dir"`
	TTL time.Duration `koanf:"ttl"`
}

// PredictorConfig configures the external matrix-factorization backend
// consulted by the collaborative scorer (spec §4.4, §9).
type PredictorConfig struct {
	// Enabled selects the HTTP model backend; when false the client
	// wraps DisabledBackend, every predict call fails, and the
	// collaborative scorer always uses the in-process user-based
	// fallback (spec §4.4 step 2).
	Enabled bool          `koanf:"enabled"`
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RateLimitConfig configures the httprate middleware.
type RateLimitConfig struct {
	Disabled     bool          `koanf:"disabled"`
	RequestLimit int           `koanf:"request_limit"`
	WindowLength time.Duration `koanf:"window_length"`
}
