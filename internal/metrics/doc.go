// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package metrics provides Prometheus metrics collection and export for
the recommendation engine.

# Available Metrics

  - recommend_recommendations_total: non-cached Recommend calls that
    reached scoring (counter; empty candidate sets are not counted)
  - recommend_recommendation_items_total: HybridRecords returned (counter)
  - recommend_last_avg_score: average score of the last result set (gauge)
  - recommend_request_duration_seconds: Recommend call latency (histogram)
  - recommend_scorer_errors_total: recovered per-strategy failures (counter)
    Labels: source (content, collaborative, sequence, rule)
  - recommend_cache_hits_total / recommend_cache_misses_total (counters)

# Usage

	reporter := metrics.Reporter{}
	eng := engine.New(tracking, catalog, cache, predictor, finder, ratings, reporter)

Metrics are exposed at /metrics in Prometheus text format via
promhttp.Handler(). Failures in metrics emission never fail a request;
Reporter's methods have no error return.

# See Also

  - internal/engine: the only caller of Reporter
  - https://prometheus.io/docs/practices/naming/: metric naming conventions
*/
package metrics
