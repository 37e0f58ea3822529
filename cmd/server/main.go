// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Command server runs the recommendation engine behind an HTTP API.
//
// Configuration is loaded via internal/config (defaults, an optional
// YAML file, then MOVIEREC_-prefixed environment variables, in that
// order of precedence):
//
//	export MOVIEREC_SERVER_PORT=8080
//	export MOVIEREC_PREDICTOR_ENABLED=true
//	export MOVIEREC_PREDICTOR_URL=http://matrix-factorization:9000/predict
//	./server
//
// Without a matrix-factorization backend configured, the collaborative
// scorer runs entirely on the in-process user-based fallback.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/movierec/internal/catalog"
	"github.com/tomtom215/movierec/internal/collaborative"
	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/engine"
	"github.com/tomtom215/movierec/internal/enginecache"
	"github.com/tomtom215/movierec/internal/httpapi"
	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/metrics"
	"github.com/tomtom215/movierec/internal/recommend"
	"github.com/tomtom215/movierec/internal/tracking"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Bool("predictor_enabled", cfg.Predictor.Enabled).
		Msg("starting movierec")

	cache, err := enginecache.NewBadgerCache(cfg.Cache.Dir)
	if err != nil {
		logging.Fatal().Err(err).Str("dir", cfg.Cache.Dir).Msg("failed to open result cache")
	}
	defer func() {
		if err := cache.Close(); err != nil {
			logging.Error().Err(err).Msg("error closing result cache")
		}
	}()

	trackingSvc := tracking.New()
	staticCatalog := catalog.NewStaticCatalog(catalog.SeedItems())
	finder := collaborative.NewCosineSimilarityFinder(trackingSvc)

	var backend collaborative.ModelBackend = collaborative.DisabledBackend{}
	if cfg.Predictor.Enabled {
		backend = collaborative.NewHTTPModelBackend(cfg.Predictor.URL, cfg.Predictor.Timeout)
	}
	predictorClient := collaborative.NewClient(backend)

	eng := engine.New(
		trackingSvc,
		staticCatalog,
		cache,
		predictorClient,
		finder,
		finder,
		metrics.Reporter{},
	)

	defaults := recommend.Options{
		Count:               cfg.Engine.DefaultCount,
		ExcludeRated:        true,
		ExcludeWatchlist:    true,
		MinScore:            cfg.Engine.DefaultMinScore,
		DiversityFactor:     cfg.Engine.DefaultDiversityFactor,
		IncludeExplanations: false,
	}
	handler := httpapi.NewHandler(eng, trackingSvc, defaults, cfg.Engine.MaxCount)
	router := httpapi.NewRouter(handler, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			logging.Error().Err(err).Msg("http server failed")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("error during http server shutdown")
	}

	logging.Info().Msg("movierec stopped")
}
