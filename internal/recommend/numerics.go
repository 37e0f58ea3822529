// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"math"
	"sort"
	"time"
)

// Normalize maps a raw 1-10 strength signal onto [0,1].
func Normalize(x float64) float64 {
	switch {
	case x < 1:
		return 0
	case x > 10:
		return 1
	default:
		return (x - 1) / 9
	}
}

// normalizeRatingSignal maps a raw 0-10 rating onto [-1,1].
func normalizeRatingSignal(v float64) float64 {
	return clamp((v-5.5)/4.5, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PopularityScore is an item-intrinsic signal, independent of user
// identity, used as the *-cold fallback for every scorer (spec §4.8).
// The result is clamped to [0,1]: the volume term alone exceeds 0.2
// once RatingCount passes 9999.
func PopularityScore(item Item) float64 {
	ratingTerm := 0.4 * (item.Popularity / 100)
	avgTerm := 0.4 * (item.AverageRating / 10)
	volumeTerm := 0.2 * (math.Log(float64(item.RatingCount)+1) / math.Log(10000))
	return clamp(ratingTerm+avgTerm+volumeTerm, 0, 1)
}

// PopularityFallback scores every candidate using PopularityScore,
// tagging the resulting ScoreRecords with the given source. Each of
// the four scoring strategies degrades to this under cold-start
// conditions (ratingCount = 0, no recent actions, no predictions, no
// similar users).
func PopularityFallback(candidates []Item, source string) []ScoreRecord {
	records := make([]ScoreRecord, 0, len(candidates))
	for _, item := range candidates {
		records = append(records, ScoreRecord{
			ItemID: item.ID,
			Item:   item,
			Score:  PopularityScore(item),
			Source: source,
		})
	}
	return records
}

// ratingVariance computes the population variance of a set of ratings;
// 0 for fewer than two samples.
func ratingVariance(ratings []float64) float64 {
	if len(ratings) < 2 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	mean := sum / float64(len(ratings))

	var sqDiff float64
	for _, r := range ratings {
		d := r - mean
		sqDiff += d * d
	}
	return sqDiff / float64(len(ratings))
}

// groupBySessions splits a chronologically-unordered action list into
// sessions: maximal runs with no intra-gap longer than timeout. Sessions
// are emitted in chronological order.
func groupBySessions(actions []Action, timeout time.Duration) [][]Action {
	if len(actions) == 0 {
		return nil
	}

	sorted := make([]Action, len(actions))
	copy(sorted, actions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	sessions := make([][]Action, 0, 1)
	current := []Action{sorted[0]}
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Timestamp.Sub(sorted[i-1].Timestamp)
		if gap > timeout {
			sessions = append(sessions, current)
			current = []Action{sorted[i]}
			continue
		}
		current = append(current, sorted[i])
	}
	sessions = append(sessions, current)
	return sessions
}

// recencyScore decays exponentially with a 24-hour half-life from the
// most recent action's timestamp; 0 if actions is empty.
func recencyScore(actions []Action, now time.Time) float64 {
	if len(actions) == 0 {
		return 0
	}
	latest := actions[0].Timestamp
	for _, a := range actions[1:] {
		if a.Timestamp.After(latest) {
			latest = a.Timestamp
		}
	}
	hours := now.Sub(latest).Hours()
	if hours < 0 {
		hours = 0
	}
	score := math.Exp(-math.Ln2 * hours / 24)
	return clamp(score, 0, 1)
}
