// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package collaborative wires the external matrix-factorization model
// and the user-similarity fallback the collaborative scorer needs
// (spec §4.4, §9). Both are genuine "open questions" the spec leaves
// to the implementation: a circuit-breaker-wrapped model client, and a
// cosine-similarity neighbor finder over shared rating history.
package collaborative

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/recommend/algorithms"
)

// ModelBackend is the raw external call a deployment's matrix-
// factorization service makes available, before circuit-breaking.
type ModelBackend interface {
	Predict(ctx context.Context, userID string, itemIDs []int) (map[int]float64, error)
}

// Client adapts a ModelBackend to algorithms.Predictor, wrapping every
// call in a circuit breaker so a struggling model degrades the request
// to the user-based fallback instead of blocking it.
type Client struct {
	backend ModelBackend
	breaker *gobreaker.CircuitBreaker[map[int]float64]
}

// NewClient wraps backend with a circuit breaker that opens after 5
// consecutive failures and probes again after 30s.
func NewClient(backend ModelBackend) *Client {
	settings := gobreaker.Settings{
		Name:        "matrix-factorization",
		MaxRequests: 1,
		Interval:    0,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &Client{
		backend: backend,
		breaker: gobreaker.NewCircuitBreaker[map[int]float64](settings),
	}
}

// Predict implements algorithms.Predictor. A circuit-open error is
// treated the same as a model error by the collaborative scorer: it
// falls through to the user-based fallback.
func (c *Client) Predict(ctx context.Context, userID string, itemIDs []int) (map[int]float64, error) {
	result, err := c.breaker.Execute(func() (map[int]float64, error) {
		return c.backend.Predict(ctx, userID, itemIDs)
	})
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("matrix factorization predict failed, falling back")
		return nil, err
	}
	return result, nil
}

var _ algorithms.Predictor = (*Client)(nil)
