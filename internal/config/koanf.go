// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in
// order of priority. The first one found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/movierec/config.yaml",
	"/etc/movierec/config.yml",
}

// ConfigPathEnvVar overrides the config file search with an explicit path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		Engine: EngineConfig{
			DefaultCount:           20,
			MaxCount:               100,
			DefaultMinScore:        0.1,
			DefaultDiversityFactor: 0.3,
		},
		Cache: CacheConfig{
			Dir: "/data/cache",
			TTL: 300 * time.Second,
		},
		Predictor: PredictorConfig{
			Enabled: false,
			URL:     "",
			Timeout: 2 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		RateLimit: RateLimitConfig{
			Disabled:     false,
			RequestLimit: 100,
			WindowLength: time.Minute,
		},
	}
}

// LoadWithKoanf loads configuration with layered sources:
//  1. Defaults built into this package.
//  2. An optional YAML config file.
//  3. Environment variables, which win over everything.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated env values into slices
// for fields koanf's struct provider represents as []string.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps MOVIEREC_-prefixed environment variable suffixes to
// koanf config paths. An explicit table, rather than a blanket
// underscore-to-dot rewrite, because several field names (read_timeout,
// cors_origins, default_min_score, ...) contain underscores themselves.
var envMappings = map[string]string{
	"server_host":          "server.host",
	"server_port":          "server.port",
	"server_read_timeout":  "server.read_timeout",
	"server_write_timeout": "server.write_timeout",
	"server_cors_origins":  "server.cors_origins",

	"engine_default_count":            "engine.default_count",
	"engine_max_count":                "engine.max_count",
	"engine_default_min_score":        "engine.default_min_score",
	"engine_default_diversity_factor": "engine.default_diversity_factor",

	"cache_dir": "cache.dir",
	"cache_ttl": "cache.ttl",

	"predictor_enabled": "predictor.enabled",
	"predictor_url":     "predictor.url",
	"predictor_timeout": "predictor.timeout",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"rate_limit_disabled":      "rate_limit.disabled",
	"rate_limit_request_limit": "rate_limit.request_limit",
	"rate_limit_window_length": "rate_limit.window_length",
}

// envTransformFunc maps MOVIEREC_-prefixed environment variables onto
// koanf config paths, e.g. MOVIEREC_SERVER_PORT -> server.port.
// Unmapped keys are dropped so stray environment variables never leak
// into the configuration.
func envTransformFunc(key string) string {
	const prefix = "MOVIEREC_"
	if !strings.HasPrefix(key, prefix) {
		return ""
	}
	suffix := strings.ToLower(strings.TrimPrefix(key, prefix))
	return envMappings[suffix]
}
