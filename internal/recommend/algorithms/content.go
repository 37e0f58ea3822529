// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"context"
	"strings"

	"github.com/tomtom215/movierec/internal/recommend"
)

// Content scores each candidate against the user's attribute
// preferences (spec §4.3): genre, director, actor, runtime, and year
// sub-scores, weighted and summed.
func Content(ctx context.Context, profile recommend.UserProfile, candidates []recommend.Item) []recommend.ScoreRecord {
	if profile.RatingCount == 0 {
		return recommend.PopularityFallback(candidates, "content-cold")
	}

	records := make([]recommend.ScoreRecord, 0, len(candidates))
	for _, item := range candidates {
		if ContextCancelled(ctx) {
			return records
		}

		genreScore := attributeScore(profile.Preferences.Genres, item.Genres, meanReduce)
		directorScore := attributeScore(profile.Preferences.Directors, item.Directors, maxReduce)
		actorScore := attributeScore(profile.Preferences.Actors, item.Actors, meanReduce)
		runtimeScore := runtimeScoreFor(profile.Preferences.RuntimePref, item.RuntimeMin)
		yearScore := yearScoreFor(profile.Preferences.YearPref, item.ReleaseYear)

		weighted := 0.4*genreScore + 0.2*directorScore + 0.2*actorScore + 0.1*runtimeScore + 0.1*yearScore
		score := recommend.Normalize(weighted * 10)

		records = append(records, recommend.ScoreRecord{
			ItemID: item.ID,
			Item:   item,
			Score:  score,
			Source: "content",
		})
	}
	return records
}

type reduceFn func(weights []float64) float64

func meanReduce(weights []float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return sum / float64(len(weights))
}

func maxReduce(weights []float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	max := weights[0]
	for _, w := range weights[1:] {
		if w > max {
			max = w
		}
	}
	return max
}

// attributeScore implements the genre/director/actor sub-score family:
// adjusted weight (w+1)/2 for every matching attribute on the item,
// reduced by reduce (mean or max). 0.5 if the preference map is empty;
// 0.45 if the item has no attribute the user has a preference for.
func attributeScore(preferences map[string]float64, itemAttrs []string, reduce reduceFn) float64 {
	if len(preferences) == 0 {
		return 0.5
	}

	matched := make([]float64, 0, len(itemAttrs))
	for _, attr := range itemAttrs {
		if w, ok := preferences[strings.ToLower(attr)]; ok {
			matched = append(matched, (w+1)/2)
		}
	}
	if len(matched) == 0 {
		return 0.45
	}
	return reduce(matched)
}

// runtimeScoreFor: 0.2 outside the preferred band; inside it, 1 minus
// |runtime-ideal| as a fraction of the larger of the two band
// half-widths (ideal-min, max-ideal). 0.5 if there is no runtime preference at all (degenerate
// profile).
func runtimeScoreFor(pref *recommend.RuntimePreference, runtime int) float64 {
	if pref == nil {
		return 0.5
	}
	r := float64(runtime)
	if r < pref.Min || r > pref.Max {
		return 0.2
	}

	maxSideDistance := pref.Ideal - pref.Min
	if upper := pref.Max - pref.Ideal; upper > maxSideDistance {
		maxSideDistance = upper
	}
	if maxSideDistance <= 0 {
		return 1
	}

	diff := r - pref.Ideal
	if diff < 0 {
		diff = -diff
	}
	return 1 - diff/maxSideDistance
}

// yearScoreFor: 0.3 outside the preferred band, 1 inside it. 0.5 if
// there is no year preference at all (degenerate profile).
func yearScoreFor(pref *recommend.YearPreference, year int) float64 {
	if pref == nil {
		return 0.5
	}
	y := float64(year)
	if y < pref.Min || y > pref.Max {
		return 0.3
	}
	return 1
}
