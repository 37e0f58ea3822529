// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package catalog provides the candidate-item source the engine
// scores against. The spec leaves the catalog's storage backend
// unspecified ("fetches candidate items"); StaticCatalog is the
// reference implementation, a slice-backed snapshot suitable for a
// small deployment or tests. A real deployment swaps in a
// database-backed Catalog behind the same interface.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/tomtom215/movierec/internal/recommend"
)

// candidateRateLimit/candidateBurst bound how often a single process
// may re-fetch the full candidate set, the client-side throttle a
// networked/database-backed Catalog would need in front of it.
const (
	candidateRateLimit = 1000 // fetches per second
	candidateBurst     = 50
)

// Catalog is the candidate-item source consumed by the engine (spec
// §6). Candidates returns the full scoreable item set; the engine
// itself filters out rated/watchlisted items before scoring.
type Catalog interface {
	Candidates(ctx context.Context) ([]recommend.Item, error)
}

// StaticCatalog is an in-memory Catalog over a fixed item set, safe for
// concurrent reads and for replacing the whole set atomically (e.g. on
// a periodic catalog refresh).
type StaticCatalog struct {
	mu      sync.RWMutex
	items   []recommend.Item
	limiter *rate.Limiter
}

// NewStaticCatalog returns a StaticCatalog seeded with items.
func NewStaticCatalog(items []recommend.Item) *StaticCatalog {
	c := &StaticCatalog{limiter: rate.NewLimiter(rate.Limit(candidateRateLimit), candidateBurst)}
	c.Replace(items)
	return c
}

// Candidates returns a copy of the current item set.
func (c *StaticCatalog) Candidates(ctx context.Context) ([]recommend.Item, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("catalog: rate limited: %w", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]recommend.Item, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Replace atomically swaps the catalog's full item set.
func (c *StaticCatalog) Replace(items []recommend.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]recommend.Item, len(items))
	copy(snapshot, items)
	c.items = snapshot
}
