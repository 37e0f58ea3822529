// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package config

import "fmt"

// Validate checks that configuration values are internally consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validatePredictor(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server.host must not be empty")
	}
	return nil
}

func (c *Config) validateEngine() error {
	if c.Engine.DefaultCount <= 0 {
		return fmt.Errorf("engine.default_count must be positive, got %d", c.Engine.DefaultCount)
	}
	if c.Engine.MaxCount < c.Engine.DefaultCount {
		return fmt.Errorf("engine.max_count (%d) must be >= engine.default_count (%d)", c.Engine.MaxCount, c.Engine.DefaultCount)
	}
	if c.Engine.DefaultMinScore < 0 || c.Engine.DefaultMinScore > 1 {
		return fmt.Errorf("engine.default_min_score must be in [0, 1], got %v", c.Engine.DefaultMinScore)
	}
	if c.Engine.DefaultDiversityFactor < 0 || c.Engine.DefaultDiversityFactor > 1 {
		return fmt.Errorf("engine.default_diversity_factor must be in [0, 1], got %v", c.Engine.DefaultDiversityFactor)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir must not be empty")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}
	return nil
}

func (c *Config) validatePredictor() error {
	if !c.Predictor.Enabled {
		return nil
	}
	if c.Predictor.URL == "" {
		return fmt.Errorf("predictor.url is required when predictor.enabled is true")
	}
	if c.Predictor.Timeout <= 0 {
		return fmt.Errorf("predictor.timeout must be positive, got %v", c.Predictor.Timeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be one of json, console; got %q", c.Logging.Format)
	}
	return nil
}
