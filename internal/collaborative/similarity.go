// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package collaborative

import (
	"context"
	"sort"
	"sync"

	"github.com/tomtom215/movierec/internal/recommend/algorithms"
)

// maxSimilarUsers bounds how many neighbors the user-based CF fallback
// considers, keeping the per-candidate rating-lookup fan-out small.
const maxSimilarUsers = 20

// RatingSource supplies the rating vectors CosineSimilarityFinder
// compares; the reference wiring is internal/tracking.Service.
type RatingSource interface {
	AllUserIDs() []string
	Ratings(ctx context.Context, userID string) (map[int]float64, error)
}

// CosineSimilarityFinder implements the "findSimilarUsers" open
// question (spec §9) as cosine similarity over each pair of users'
// shared rated-item vectors. It also answers the per-item rating
// lookups the collaborative scorer's fallback path needs.
type CosineSimilarityFinder struct {
	source RatingSource

	mu    sync.Mutex
	cache map[string]map[int]float64
}

// NewCosineSimilarityFinder wires a RatingSource into a finder.
func NewCosineSimilarityFinder(source RatingSource) *CosineSimilarityFinder {
	return &CosineSimilarityFinder{source: source, cache: map[string]map[int]float64{}}
}

// FindSimilarUsers implements algorithms.SimilarUserFinder.
func (f *CosineSimilarityFinder) FindSimilarUsers(ctx context.Context, userID string) ([]algorithms.SimilarUser, error) {
	target, err := f.ratingsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(target) == 0 {
		return nil, nil
	}

	var candidates []algorithms.SimilarUser
	for _, other := range f.source.AllUserIDs() {
		if other == userID {
			continue
		}
		otherRatings, err := f.ratingsFor(ctx, other)
		if err != nil || len(otherRatings) == 0 {
			continue
		}
		sim := cosineSimilaritySparse(target, otherRatings)
		if sim <= 0 {
			continue
		}
		candidates = append(candidates, algorithms.SimilarUser{UserID: other, Similarity: sim})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Similarity > candidates[j].Similarity })
	if len(candidates) > maxSimilarUsers {
		candidates = candidates[:maxSimilarUsers]
	}
	return candidates, nil
}

// UserRating implements algorithms.RatingLookup.
func (f *CosineSimilarityFinder) UserRating(ctx context.Context, userID string, itemID int) (float64, bool) {
	ratings, err := f.ratingsFor(ctx, userID)
	if err != nil {
		return 0, false
	}
	v, ok := ratings[itemID]
	return v, ok
}

func (f *CosineSimilarityFinder) ratingsFor(ctx context.Context, userID string) (map[int]float64, error) {
	f.mu.Lock()
	if cached, ok := f.cache[userID]; ok {
		f.mu.Unlock()
		return cached, nil
	}
	f.mu.Unlock()

	ratings, err := f.source.Ratings(ctx, userID)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.cache[userID] = ratings
	f.mu.Unlock()
	return ratings, nil
}

// InvalidateCache drops cached rating vectors, forcing the next lookup
// to re-read from the source. Call after new ratings are recorded.
func (f *CosineSimilarityFinder) InvalidateCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = map[string]map[int]float64{}
}

// cosineSimilaritySparse aligns two sparse rating maps onto dense
// vectors over their shared item-ID index (items rated by neither
// contribute nothing and are skipped) and delegates to
// algorithms.CosineSimilarity.
func cosineSimilaritySparse(a, b map[int]float64) float64 {
	itemIDs := make(map[int]struct{}, len(a)+len(b))
	for itemID := range a {
		itemIDs[itemID] = struct{}{}
	}
	for itemID := range b {
		itemIDs[itemID] = struct{}{}
	}

	vecA := make([]float64, 0, len(itemIDs))
	vecB := make([]float64, 0, len(itemIDs))
	for itemID := range itemIDs {
		vecA = append(vecA, a[itemID])
		vecB = append(vecB, b[itemID])
	}
	return algorithms.CosineSimilarity(vecA, vecB)
}

var (
	_ algorithms.SimilarUserFinder = (*CosineSimilarityFinder)(nil)
	_ algorithms.RatingLookup      = (*CosineSimilarityFinder)(nil)
)
