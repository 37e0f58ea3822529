// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/movierec/internal/recommend"
	"github.com/tomtom215/movierec/internal/recommend/algorithms"
)

type fakeTracking struct {
	actions map[string][]recommend.Action
}

func (f *fakeTracking) GetUserActions(_ context.Context, userID string, limit int, actionType recommend.ActionType) ([]recommend.Action, error) {
	var out []recommend.Action
	for _, a := range f.actions[userID] {
		if actionType != "" && a.Type != actionType {
			continue
		}
		out = append(out, a)
	}
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTracking) GetRecentActions(ctx context.Context, userID string) ([]recommend.Action, error) {
	return f.GetUserActions(ctx, userID, -1, "")
}

type fakeCatalog struct {
	items []recommend.Item
	err   error
}

func (f *fakeCatalog) Candidates(_ context.Context) ([]recommend.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeCache struct {
	store map[string][]byte
}

func newFakeCache() *fakeCache { return &fakeCache{store: map[string][]byte{}} }

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := f.store[key]
	return v, ok
}

func (f *fakeCache) SetEX(_ context.Context, key string, _ time.Duration, value []byte) error {
	f.store[key] = value
	return nil
}

type fakePredictor struct{}

func (fakePredictor) Predict(_ context.Context, _ string, _ []int) (map[int]float64, error) {
	return nil, nil
}

type fakeFinder struct{}

func (fakeFinder) FindSimilarUsers(_ context.Context, _ string) ([]algorithms.SimilarUser, error) {
	return nil, nil
}

type fakeRatings struct{}

func (fakeRatings) UserRating(_ context.Context, _ string, _ int) (float64, bool) { return 0, false }

func newTestEngine(tracking recommend.Tracking, items []recommend.Item, cache *fakeCache) *Engine {
	return New(tracking, &fakeCatalog{items: items}, cache, fakePredictor{}, fakeFinder{}, fakeRatings{}, nil)
}

func TestRecommendFreshUserReturnsHybridRecords(t *testing.T) {
	tracking := &fakeTracking{actions: map[string][]recommend.Action{}}
	items := []recommend.Item{
		{ID: 1, Popularity: 90, AverageRating: 8, RatingCount: 100},
		{ID: 2, Popularity: 50, AverageRating: 6, RatingCount: 50},
		{ID: 3, Popularity: 10, AverageRating: 4, RatingCount: 10},
	}
	eng := newTestEngine(tracking, items, newFakeCache())

	opts := recommend.Options{Count: 3, MinScore: 0, DiversityFactor: 0.25}
	results, err := eng.Recommend(context.Background(), "fresh-user", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, r := range results {
		if r.Source != "hybrid" {
			t.Errorf("source = %q, want hybrid", r.Source)
		}
		if r.Score < 0 || r.Score > 1 {
			t.Errorf("score %v out of [0,1]", r.Score)
		}
	}
}

func TestRecommendEmptyCandidatesReturnsEmptyNoCacheWrite(t *testing.T) {
	tracking := &fakeTracking{actions: map[string][]recommend.Action{}}
	cache := newFakeCache()
	eng := newTestEngine(tracking, nil, cache)

	results, err := eng.Recommend(context.Background(), "u1", recommend.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if len(cache.store) != 0 {
		t.Errorf("expected no cache write for empty candidate set, got %d entries", len(cache.store))
	}
}

func TestRecommendCandidateFetchErrorDegradesToEmptyResult(t *testing.T) {
	tracking := &fakeTracking{actions: map[string][]recommend.Action{}}
	cache := newFakeCache()
	eng := New(tracking, &fakeCatalog{err: errors.New("catalog unavailable")}, cache, fakePredictor{}, fakeFinder{}, fakeRatings{}, nil)

	results, err := eng.Recommend(context.Background(), "u1", recommend.DefaultOptions())
	if err != nil {
		t.Fatalf("candidate fetch failure should degrade to empty result, not surface an error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if len(cache.store) != 0 {
		t.Errorf("expected no cache write when candidates degrade to empty, got %d entries", len(cache.store))
	}
}

func TestRecommendCacheServesSecondCall(t *testing.T) {
	tracking := &fakeTracking{actions: map[string][]recommend.Action{}}
	items := []recommend.Item{{ID: 1, Popularity: 90, AverageRating: 8, RatingCount: 100}}
	cache := newFakeCache()
	eng := newTestEngine(tracking, items, cache)

	opts := recommend.Options{Count: 1, MinScore: 0}
	first, err := eng.Recommend(context.Background(), "u1", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.store) != 1 {
		t.Fatalf("expected cache write, got %d entries", len(cache.store))
	}

	second, err := eng.Recommend(context.Background(), "u1", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != len(first) || second[0].ItemID != first[0].ItemID {
		t.Errorf("second (cached) call = %+v, want match with first %+v", second, first)
	}
}

func TestRecommendExcludesRatedItems(t *testing.T) {
	tracking := &fakeTracking{actions: map[string][]recommend.Action{
		"u1": {{UserID: "u1", ItemID: 1, Type: recommend.ActionRate, Value: 8, Timestamp: time.Now()}},
	}}
	items := []recommend.Item{
		{ID: 1, Popularity: 90, AverageRating: 8, RatingCount: 100},
		{ID: 2, Popularity: 80, AverageRating: 7, RatingCount: 90},
	}
	eng := newTestEngine(tracking, items, newFakeCache())

	opts := recommend.Options{Count: 10, MinScore: 0, ExcludeRated: true}
	results, err := eng.Recommend(context.Background(), "u1", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range results {
		if r.ItemID == 1 {
			t.Errorf("rated item 1 should have been excluded, got %+v", results)
		}
	}
}

func TestRecommendRespectsCountCutoff(t *testing.T) {
	tracking := &fakeTracking{actions: map[string][]recommend.Action{}}
	items := make([]recommend.Item, 10)
	for i := range items {
		items[i] = recommend.Item{ID: i + 1, Popularity: float64(50 + i), AverageRating: 6, RatingCount: 20}
	}
	eng := newTestEngine(tracking, items, newFakeCache())

	opts := recommend.Options{Count: 3, MinScore: 0}
	results, err := eng.Recommend(context.Background(), "u1", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
}

func TestRecommendCanceledContextReturnsTimeout(t *testing.T) {
	tracking := &fakeTracking{actions: map[string][]recommend.Action{}}
	eng := newTestEngine(tracking, []recommend.Item{{ID: 1}}, newFakeCache())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Recommend(ctx, "u1", recommend.DefaultOptions())
	if err == nil {
		t.Fatal("expected timeout error for canceled context")
	}
}
