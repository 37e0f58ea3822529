// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"context"
	"strings"
	"time"

	"github.com/tomtom215/movierec/internal/logging"
)

// Tracking is the narrow TrackingService contract the profile builder
// depends on. The concrete reference implementation lives in
// internal/tracking; this interface exists so the engine never imports
// a specific backend.
type Tracking interface {
	GetUserActions(ctx context.Context, userID string, limit int, actionType ActionType) ([]Action, error)
	GetRecentActions(ctx context.Context, userID string) ([]Action, error)
}

// BuildProfile implements the Profile Builder (spec §4.2). On any
// downstream read error it returns a degenerate profile rather than
// propagating — the PROFILE_DEGRADED path is internal only.
func BuildProfile(ctx context.Context, tracking Tracking, userID string, now time.Time) UserProfile {
	allRatings, err := tracking.GetUserActions(ctx, userID, 1000, ActionRate)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("profile builder: rating read failed, degrading")
		return Degenerate(userID)
	}
	recent, err := tracking.GetRecentActions(ctx, userID)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("profile builder: recent-action read failed, degrading")
		return Degenerate(userID)
	}
	allActions, err := tracking.GetUserActions(ctx, userID, 1000, "")
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("profile builder: action read failed, degrading")
		return Degenerate(userID)
	}

	profile := UserProfile{UserID: userID}

	sessions := groupBySessions(allActions, SessionTimeout)
	if len(sessions) > 0 {
		last := sessions[len(sessions)-1]
		profile.SessionDepth = min64(1, float64(len(last))/10)
		profile.Engagement = meanSessionSize(sessions)
	}

	profile.RecencyScore = recencyScore(allActions, now)

	if len(recent) > SequenceWindow {
		recent = recent[:SequenceWindow]
	}
	profile.RecentActions = recent

	profile.RatingCount = len(allRatings)
	if len(allRatings) > 0 {
		profile.AvgRating, profile.RatingVariance, profile.TimeActiveDays = ratingStats(allRatings, now)
	}

	profile.Preferences = derivePreferences(allRatings, now)

	return profile
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func meanSessionSize(sessions [][]Action) float64 {
	if len(sessions) == 0 {
		return 0
	}
	total := 0
	for _, s := range sessions {
		total += len(s)
	}
	return float64(total) / float64(len(sessions))
}

// ratingStats returns (avgRating, ratingVariance, timeActiveDays) for a
// set of rate actions.
func ratingStats(ratings []Action, now time.Time) (avg, variance float64, timeActiveDays int) {
	values := make([]float64, len(ratings))
	var sum float64
	earliest := ratings[0].Timestamp
	for i, r := range ratings {
		values[i] = r.Value
		sum += r.Value
		if r.Timestamp.Before(earliest) {
			earliest = r.Timestamp
		}
	}
	avg = sum / float64(len(ratings))
	variance = ratingVariance(values)
	timeActiveDays = int(now.Sub(earliest).Hours() / 24)
	if timeActiveDays < 0 {
		timeActiveDays = 0
	}
	return avg, variance, timeActiveDays
}

// derivePreferences builds the attribute preference maps and
// runtime/year bands from a user's rating history (spec §4.2). now
// bounds the year-preference ceiling so the result stays deterministic
// under an injected clock.
func derivePreferences(ratings []Action, now time.Time) Preferences {
	genreSum, genreCount := map[string]float64{}, map[string]int{}
	directorSum, directorCount := map[string]float64{}, map[string]int{}
	actorSum, actorCount := map[string]float64{}, map[string]int{}

	var runtimeWeightedSum, runtimeWeightSum float64
	var yearWeightedSum, yearWeightSum float64

	for _, r := range ratings {
		signal := normalizeRatingSignal(r.Value)
		if r.Metadata == nil {
			continue
		}
		for _, g := range r.Metadata.Genres {
			k := strings.ToLower(g)
			genreSum[k] += signal
			genreCount[k]++
		}
		for _, d := range r.Metadata.Directors {
			k := strings.ToLower(d)
			directorSum[k] += signal
			directorCount[k]++
		}
		for _, a := range r.Metadata.Actors {
			k := strings.ToLower(a)
			actorSum[k] += signal
			actorCount[k]++
		}
		if signal > 0 {
			if r.Metadata.RuntimeMin > 0 {
				runtimeWeightedSum += float64(r.Metadata.RuntimeMin) * signal
				runtimeWeightSum += signal
			}
			if r.Metadata.ReleaseYear > 0 {
				yearWeightedSum += float64(r.Metadata.ReleaseYear) * signal
				yearWeightSum += signal
			}
		}
	}

	genres := averageMap(genreSum, genreCount)
	directors := averageMap(directorSum, directorCount)
	actors := averageMap(actorSum, actorCount)

	var runtimePref *RuntimePreference
	if runtimeWeightSum > 0 {
		ideal := runtimeWeightedSum / runtimeWeightSum
		runtimePref = &RuntimePreference{
			Min:   maxFloat(50, ideal-40),
			Max:   ideal + 50,
			Ideal: ideal,
		}
	} else {
		runtimePref = &RuntimePreference{Min: 70, Max: 190, Ideal: 120}
	}

	var yearPref *YearPreference
	currentYear := float64(now.Year())
	if yearWeightSum > 0 {
		ideal := yearWeightedSum / yearWeightSum
		yearPref = &YearPreference{
			Min: maxFloat(1950, ideal-15),
			Max: min64(currentYear, ideal+15),
		}
	} else {
		yearPref = &YearPreference{Min: 1980, Max: currentYear}
	}

	return Preferences{
		Genres:          genres,
		Directors:       directors,
		Actors:          actors,
		RuntimePref:     runtimePref,
		YearPref:        yearPref,
		RatingThreshold: RatingThreshold,
	}
}

func averageMap(sum map[string]float64, count map[string]int) map[string]float64 {
	out := make(map[string]float64, len(sum))
	for k, s := range sum {
		c := count[k]
		if c < 1 {
			c = 1
		}
		out[k] = s / float64(c)
	}
	return out
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
