// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/tomtom215/movierec/internal/recommend"
)

// sessionSignals accumulates weighted attribute preference from the
// user's recent action sequence (spec §4.5).
type sessionSignals struct {
	genres      map[string]float64
	directors   map[string]float64
	actors      map[string]float64
	totalWeight float64
}

// Sequence scores each candidate against the attribute signals built
// from the user's most recent actions, favoring attributes of things
// acted on recently and with high engagement.
func Sequence(ctx context.Context, profile recommend.UserProfile, candidates []recommend.Item, now time.Time) []recommend.ScoreRecord {
	if len(profile.RecentActions) == 0 {
		return recommend.PopularityFallback(candidates, "sequence-cold")
	}

	signals := buildSessionSignals(profile.RecentActions, now)

	records := make([]recommend.ScoreRecord, 0, len(candidates))
	for _, item := range candidates {
		if ContextCancelled(ctx) {
			return records
		}

		if signals.totalWeight == 0 {
			records = append(records, recommend.ScoreRecord{
				ItemID: item.ID,
				Item:   item,
				Score:  0.4,
				Source: "sequence",
			})
			continue
		}

		genreScore := signalScore(signals.genres, signals.totalWeight, item.Genres, meanReduce)
		directorScore := signalScore(signals.directors, signals.totalWeight, item.Directors, maxReduce)
		actorScore := signalScore(signals.actors, signals.totalWeight, item.Actors, meanReduce)

		weighted := 0.5*genreScore + 0.3*directorScore + 0.2*actorScore
		score := recommend.Normalize(weighted * 10)

		records = append(records, recommend.ScoreRecord{
			ItemID: item.ID,
			Item:   item,
			Score:  score,
			Source: "sequence",
		})
	}
	return records
}

// signalScore scores an item's attribute list against accumulated
// session weight, sharing meanReduce/maxReduce with the content scorer
// but working directly on the [0,1] weight-share the signal already
// carries, unlike attributeScore's (w+1)/2 preference-sign transform.
// 0 if the item has no attribute the session touched at all.
func signalScore(signal map[string]float64, totalWeight float64, itemAttrs []string, reduce reduceFn) float64 {
	matched := make([]float64, 0, len(itemAttrs))
	for _, attr := range itemAttrs {
		if w, ok := signal[strings.ToLower(attr)]; ok {
			matched = append(matched, w/totalWeight)
		}
	}
	if len(matched) == 0 {
		return 0
	}
	return reduce(matched)
}

func buildSessionSignals(actions []recommend.Action, now time.Time) sessionSignals {
	signals := sessionSignals{
		genres:    map[string]float64{},
		directors: map[string]float64{},
		actors:    map[string]float64{},
	}

	for i, action := range actions {
		if action.Metadata == nil {
			continue
		}

		hoursSince := now.Sub(action.Timestamp).Hours()
		if hoursSince < 0 {
			hoursSince = 0
		}
		recencyWeight := math.Exp(-math.Ln2*hoursSince/24) * (1 - math.Min(0.3, float64(i)/40))
		actionWeight := recencyWeight * actionTypeBoost(action.Type, action.Value)

		for _, g := range action.Metadata.Genres {
			signals.genres[strings.ToLower(g)] += actionWeight
		}
		for _, d := range action.Metadata.Directors {
			signals.directors[strings.ToLower(d)] += actionWeight
		}
		for _, a := range action.Metadata.Actors {
			signals.actors[strings.ToLower(a)] += actionWeight
		}
		signals.totalWeight += actionWeight
	}
	return signals
}

// actionTypeBoost weights an action's contribution to the session
// signals by how strongly it implies engagement with the item.
func actionTypeBoost(actionType recommend.ActionType, value float64) float64 {
	switch actionType {
	case recommend.ActionWatchTime:
		return math.Min(1.2, value/60)
	case recommend.ActionRate:
		return value / 10
	case recommend.ActionAddWatchlist:
		return 0.7
	case recommend.ActionView:
		return 0.5
	default:
		return 0.4
	}
}
