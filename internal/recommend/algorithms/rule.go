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

// minPopularityRule is the deterministic popularity-rule threshold: an
// item at or above median popularity counts as a "popular pick".
const minPopularityRule = 50.0

// Rule scores each candidate with four independent deterministic
// checks against the user's preferences, rather than a continuous
// similarity metric — the one scorer meant to produce useful ordering
// from the first request, before any behavioral signal accumulates.
func Rule(ctx context.Context, profile recommend.UserProfile, candidates []recommend.Item) []recommend.ScoreRecord {
	if profile.RatingCount == 0 {
		return recommend.PopularityFallback(candidates, "rule-cold")
	}

	records := make([]recommend.ScoreRecord, 0, len(candidates))
	for _, item := range candidates {
		if ContextCancelled(ctx) {
			return records
		}

		matched := 0
		if hasPositivePreference(profile.Preferences.Genres, item.Genres) {
			matched++
		}
		if hasPositivePreference(profile.Preferences.Directors, item.Directors) {
			matched++
		}
		if item.AverageRating >= recommend.RatingThreshold {
			matched++
		}
		if item.Popularity >= minPopularityRule {
			matched++
		}

		records = append(records, recommend.ScoreRecord{
			ItemID: item.ID,
			Item:   item,
			Score:  float64(matched) / 4,
			Source: "rule",
		})
	}
	return records
}

// hasPositivePreference reports whether any of attrs carries a strictly
// positive weight in preferences.
func hasPositivePreference(preferences map[string]float64, attrs []string) bool {
	for _, attr := range attrs {
		if w, ok := preferences[strings.ToLower(attr)]; ok && w > 0 {
			return true
		}
	}
	return false
}
