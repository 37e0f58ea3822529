// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package metrics provides Prometheus instrumentation for the
// recommendation engine: request throughput and latency, per-scorer
// health, and cache effectiveness (spec §6 names three counters/gauges
// as an external contract; the rest are natural additions in the same
// style).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationsTotal corresponds to the spec's
	// metrics:recommendations.total_generated.
	RecommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_recommendations_total",
			Help: "Total number of non-cached recommend() calls that scored at least one candidate",
		},
	)

	// RecommendationItemsTotal corresponds to the spec's
	// metrics:recommendations.total_items.
	RecommendationItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_recommendation_items_total",
			Help: "Total number of HybridRecords returned across all recommend() calls",
		},
	)

	// LastAvgScore corresponds to the spec's metrics:last_avg_score.
	LastAvgScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_last_avg_score",
			Help: "Average HybridRecord score of the most recent recommend() call",
		},
	)

	RequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_request_duration_seconds",
			Help:    "Duration of a full Engine.Recommend call",
			Buckets: prometheus.DefBuckets,
		},
	)

	ScorerErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_scorer_errors_total",
			Help: "Total number of per-strategy scorer failures recovered by the engine",
		},
		[]string{"source"},
	)

	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)
)

// Reporter adapts the package-level collectors to engine.Metrics.
type Reporter struct{}

// ObserveRecommendation records a completed, non-cached recommendation.
func (Reporter) ObserveRecommendation(itemCount int, avgScore float64) {
	RecommendationsTotal.Inc()
	RecommendationItemsTotal.Add(float64(itemCount))
	LastAvgScore.Set(avgScore)
}

// ObserveCacheResult records a cache hit or miss.
func (Reporter) ObserveCacheResult(hit bool) {
	if hit {
		CacheHitsTotal.Inc()
		return
	}
	CacheMissesTotal.Inc()
}

// ObserveScorerError records a recovered per-strategy scorer failure.
func (Reporter) ObserveScorerError(source string) {
	ScorerErrorsTotal.WithLabelValues(source).Inc()
}

// ObserveRequestDuration records the wall-clock time of one Recommend call.
func (Reporter) ObserveRequestDuration(seconds float64) {
	RequestDuration.Observe(seconds)
}
