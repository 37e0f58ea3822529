// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package config provides centralized configuration for the recommendation
service: load order is defaults, then an optional YAML file, then
environment variables, with each layer overriding the previous one.

# Configuration Structure

  - ServerConfig: HTTP listener host/port/timeouts/CORS
  - EngineConfig: default and maximum values for recommend Options
  - CacheConfig: result-cache directory and TTL
  - PredictorConfig: the external matrix-factorization backend
  - LoggingConfig: zerolog level/format/caller
  - RateLimitConfig: httprate request-rate limiting

# Environment Variables

All environment variables are prefixed MOVIEREC_ and map onto koanf
paths via an explicit table (see envMappings in koanf.go) rather than
a blanket underscore-to-dot rewrite, since several field names already
contain underscores (e.g. read_timeout).

	MOVIEREC_SERVER_PORT
	MOVIEREC_SERVER_HOST
	MOVIEREC_ENGINE_MAX_COUNT
	MOVIEREC_CACHE_DIR
	MOVIEREC_PREDICTOR_URL
	MOVIEREC_LOG_LEVEL

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	// cfg.Server.Port, cfg.Engine.MaxCount, etc. are now populated.
*/
package config
