// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package engine implements the recommendation orchestrator (spec
// §4.1): cache lookup, profile build, weight policy, candidate
// fetch/filter, parallel scoring, fusion, diversity, cutoff/rank, and
// cache write. It is the one place that imports both internal/recommend
// and internal/recommend/algorithms.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movierec/internal/catalog"
	"github.com/tomtom215/movierec/internal/enginecache"
	"github.com/tomtom215/movierec/internal/enginerr"
	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/recommend"
	"github.com/tomtom215/movierec/internal/recommend/algorithms"
)

// cacheTTL is the fixed result-cache lifetime (spec §4.1 step 8).
const cacheTTL = 300 * time.Second

// Metrics is the narrow observability hook the engine reports through;
// implemented by internal/metrics. Failures in metrics emission must
// never fail the request (spec §6), so the engine never inspects an
// error return from these calls — there isn't one.
type Metrics interface {
	ObserveRecommendation(itemCount int, avgScore float64)
	ObserveCacheResult(hit bool)
	ObserveScorerError(source string)
	ObserveRequestDuration(seconds float64)
}

// noopMetrics discards every observation; used when the engine is
// constructed without a Metrics implementation (e.g. in tests).
type noopMetrics struct{}

func (noopMetrics) ObserveRecommendation(int, float64) {}
func (noopMetrics) ObserveCacheResult(bool)            {}
func (noopMetrics) ObserveScorerError(string)          {}
func (noopMetrics) ObserveRequestDuration(float64)     {}

// Engine wires the four scorers and their dependencies together behind
// a single Recommend entry point.
type Engine struct {
	Tracking  recommend.Tracking
	Catalog   catalog.Catalog
	Cache     enginecache.Cache
	Predictor algorithms.Predictor
	Finder    algorithms.SimilarUserFinder
	Ratings   algorithms.RatingLookup
	Metrics   Metrics
}

// New constructs an Engine. metrics may be nil, in which case
// observations are discarded.
func New(
	tracking recommend.Tracking,
	cat catalog.Catalog,
	cache enginecache.Cache,
	predictor algorithms.Predictor,
	finder algorithms.SimilarUserFinder,
	ratings algorithms.RatingLookup,
	metrics Metrics,
) *Engine {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Engine{
		Tracking:  tracking,
		Catalog:   cat,
		Cache:     cache,
		Predictor: predictor,
		Finder:    finder,
		Ratings:   ratings,
		Metrics:   metrics,
	}
}

// Recommend implements the orchestrator operation (spec §4.1).
func (e *Engine) Recommend(ctx context.Context, userID string, opts recommend.Options) ([]recommend.HybridRecord, error) {
	start := time.Now()
	defer func() { e.Metrics.ObserveRequestDuration(time.Since(start).Seconds()) }()

	cacheKey, err := canonicalCacheKey(userID, opts)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("cache key derivation failed, skipping cache")
	} else if raw, hit := e.Cache.Get(ctx, cacheKey); hit {
		var cached []recommend.HybridRecord
		if err := json.Unmarshal(raw, &cached); err == nil {
			e.Metrics.ObserveCacheResult(true)
			return cached, nil
		}
		logging.Ctx(ctx).Warn().Err(err).Msg("cache payload decode failed, recomputing")
	}
	e.Metrics.ObserveCacheResult(false)

	if ctx.Err() != nil {
		return nil, enginerr.ErrTimeout
	}

	profile := recommend.BuildProfile(ctx, e.Tracking, userID, time.Now())
	weights := recommend.WeightPolicy(profile)

	candidates, err := e.fetchCandidates(ctx, userID, opts)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("candidate fetch failed, degrading to empty candidate set")
		candidates = nil
	}
	if len(candidates) == 0 {
		return []recommend.HybridRecord{}, nil
	}

	if ctx.Err() != nil {
		return nil, enginerr.ErrTimeout
	}

	content, collaborative, sequence, rule := e.runScorers(ctx, userID, profile, candidates)

	fused := recommend.Fuse(content, collaborative, sequence, rule, weights, opts.IncludeExplanations)
	diversified := recommend.Diversify(fused, opts.DiversityFactor)
	final := recommend.CutoffAndRank(diversified, opts.MinScore, opts.Count)

	e.Metrics.ObserveRecommendation(len(final), averageScore(final))

	if ctx.Err() != nil {
		return nil, enginerr.ErrTimeout
	}
	if cacheKey != "" {
		if payload, err := json.Marshal(final); err == nil {
			if err := e.Cache.SetEX(ctx, cacheKey, cacheTTL, payload); err != nil {
				logging.Ctx(ctx).Warn().Err(err).Msg("cache write failed")
			}
		}
	}

	return final, nil
}

// runScorers runs the four strategies concurrently (spec §5). A scorer
// that panics is recovered and contributes an empty list rather than
// aborting the request (spec §4.1 step 6 / §7 SCORER_FAILURE).
func (e *Engine) runScorers(ctx context.Context, userID string, profile recommend.UserProfile, candidates []recommend.Item) (content, collaborative, sequence, rule []recommend.ScoreRecord) {
	var wg sync.WaitGroup
	wg.Add(4)

	go e.safeScore(&wg, "content", func() []recommend.ScoreRecord {
		return algorithms.Content(ctx, profile, candidates)
	}, &content)

	go e.safeScore(&wg, "collaborative", func() []recommend.ScoreRecord {
		return algorithms.Collaborative(ctx, userID, candidates, e.Predictor, e.Finder, e.Ratings)
	}, &collaborative)

	go e.safeScore(&wg, "sequence", func() []recommend.ScoreRecord {
		return algorithms.Sequence(ctx, profile, candidates, time.Now())
	}, &sequence)

	go e.safeScore(&wg, "rule", func() []recommend.ScoreRecord {
		return algorithms.Rule(ctx, profile, candidates)
	}, &rule)

	wg.Wait()
	return
}

func (e *Engine) safeScore(wg *sync.WaitGroup, source string, run func() []recommend.ScoreRecord, out *[]recommend.ScoreRecord) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			logging.Warn().Str("strategy", source).Interface("panic", r).Msg("scorer failed, contributing no scores")
			e.Metrics.ObserveScorerError(source)
			*out = nil
		}
	}()
	*out = run()
}

// fetchCandidates fetches the catalog and filters out rated/watchlisted
// items per the request's options (spec §4.1 step 4).
func (e *Engine) fetchCandidates(ctx context.Context, userID string, opts recommend.Options) ([]recommend.Item, error) {
	items, err := e.Catalog.Candidates(ctx)
	if err != nil {
		return nil, err
	}
	if !opts.ExcludeRated && !opts.ExcludeWatchlist {
		return items, nil
	}

	exclude := make(map[int]struct{})
	if opts.ExcludeRated {
		rated, err := e.Tracking.GetUserActions(ctx, userID, -1, recommend.ActionRate)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("rated-items read failed, skipping exclusion")
		}
		for _, a := range rated {
			exclude[a.ItemID] = struct{}{}
		}
	}
	if opts.ExcludeWatchlist {
		watchlist, err := e.Tracking.GetUserActions(ctx, userID, -1, recommend.ActionAddWatchlist)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("watchlist read failed, skipping exclusion")
		}
		for _, a := range watchlist {
			exclude[a.ItemID] = struct{}{}
		}
	}
	if len(exclude) == 0 {
		return items, nil
	}

	filtered := make([]recommend.Item, 0, len(items))
	for _, item := range items {
		if _, excluded := exclude[item.ID]; excluded {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

func canonicalCacheKey(userID string, opts recommend.Options) (string, error) {
	encoded, err := json.Marshal(opts)
	if err != nil {
		return "", err
	}
	return "recommendations:" + userID + ":" + string(encoded), nil
}

func averageScore(records []recommend.HybridRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.Score
	}
	return sum / float64(len(records))
}
