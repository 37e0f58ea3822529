// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"context"
	"math"
	"testing"

	"github.com/tomtom215/movierec/internal/recommend"
)

func TestContentColdFallback(t *testing.T) {
	profile := recommend.Degenerate("u1")
	candidates := []recommend.Item{{ID: 1, Popularity: 80, AverageRating: 7, RatingCount: 500}}

	records := Content(context.Background(), profile, candidates)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Source != "content-cold" {
		t.Errorf("source = %q, want content-cold", records[0].Source)
	}
}

func TestContentEmptyPreferencesDefaults(t *testing.T) {
	profile := recommend.UserProfile{
		RatingCount: 10,
		Preferences: recommend.Preferences{
			Genres:    map[string]float64{},
			Directors: map[string]float64{},
			Actors:    map[string]float64{},
		},
	}
	item := recommend.Item{ID: 1, Genres: []string{"drama"}, Directors: []string{"x"}, Actors: []string{"y"}, RuntimeMin: 100, ReleaseYear: 2000}

	records := Content(context.Background(), profile, []recommend.Item{item})
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	// every sub-score is 0.5 (empty preferences, nil runtime/year pref):
	// weighted = 0.4*0.5+0.2*0.5+0.2*0.5+0.1*0.5+0.1*0.5 = 0.5 -> *10 = 5 -> normalize(5) = 4/9
	want := recommend.Normalize(5)
	if math.Abs(records[0].Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", records[0].Score, want)
	}
}

func TestAttributeScoreMatchAndMiss(t *testing.T) {
	prefs := map[string]float64{"drama": 0.8, "comedy": -0.4}

	if got := attributeScore(prefs, []string{"Drama"}, meanReduce); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("matched drama = %v, want 0.9", got)
	}
	if got := attributeScore(prefs, []string{"horror"}, meanReduce); got != 0.45 {
		t.Errorf("unmatched attribute = %v, want 0.45", got)
	}
	if got := attributeScore(nil, []string{"drama"}, meanReduce); got != 0.5 {
		t.Errorf("empty preference map = %v, want 0.5", got)
	}
}

func TestRuntimeScoreForBand(t *testing.T) {
	pref := &recommend.RuntimePreference{Min: 70, Max: 190, Ideal: 120}

	if got := runtimeScoreFor(pref, 120); got != 1 {
		t.Errorf("ideal runtime = %v, want 1", got)
	}
	if got := runtimeScoreFor(pref, 30); got != 0.2 {
		t.Errorf("below band = %v, want 0.2", got)
	}
	if got := runtimeScoreFor(pref, 250); got != 0.2 {
		t.Errorf("above band = %v, want 0.2", got)
	}
	if got := runtimeScoreFor(nil, 120); got != 0.5 {
		t.Errorf("nil pref = %v, want 0.5", got)
	}
}

func TestYearScoreForBand(t *testing.T) {
	pref := &recommend.YearPreference{Min: 1980, Max: 2026}

	if got := yearScoreFor(pref, 2000); got != 1 {
		t.Errorf("in band = %v, want 1", got)
	}
	if got := yearScoreFor(pref, 1950); got != 0.3 {
		t.Errorf("out of band = %v, want 0.3", got)
	}
	if got := yearScoreFor(nil, 2000); got != 0.5 {
		t.Errorf("nil pref = %v, want 0.5", got)
	}
}

func TestContentContextCancellation(t *testing.T) {
	profile := recommend.UserProfile{
		RatingCount: 10,
		Preferences: recommend.Preferences{Genres: map[string]float64{}, Directors: map[string]float64{}, Actors: map[string]float64{}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := []recommend.Item{{ID: 1}, {ID: 2}}
	records := Content(ctx, profile, candidates)
	if len(records) != 0 {
		t.Errorf("got %d records after cancellation, want 0", len(records))
	}
}
