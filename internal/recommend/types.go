// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package recommend implements the hybrid movie recommendation engine:
// profile derivation, four parallel scoring strategies, maturity-adaptive
// weighting, and the fusion/diversity/cache pipeline that turns them into
// a ranked list.
package recommend

import "time"

// ActionType enumerates the kinds of user events the engine understands.
type ActionType string

// Recognized action types and their value semantics.
const (
	ActionRate         ActionType = "rate"         // value: rating 0-10
	ActionWatchTime    ActionType = "watchTime"    // value: minutes watched, >= 0
	ActionAddWatchlist ActionType = "add_watchlist" // value: ignored
	ActionView         ActionType = "view"         // value: ignored
	ActionClick        ActionType = "click"        // value: ignored
)

// SequenceWindow bounds how many recent actions inform sequence scoring.
const SequenceWindow = 20

// SessionTimeout is the maximum gap between two actions in the same session.
const SessionTimeout = 30 * time.Minute

// RatingThreshold is the policy constant used when deriving preferences.
const RatingThreshold = 6.5

// Action is an immutable record of a user event, produced by TrackingService.
type Action struct {
	UserID     string
	ItemID     int
	Type       ActionType
	Value      float64
	Timestamp  time.Time
	Metadata   *ActionMetadata
}

// ActionMetadata carries item attributes alongside an action, when the
// source event included them (e.g. a client-side "rate" event that also
// knows the movie's genres).
type ActionMetadata struct {
	Genres      []string
	Directors   []string
	Actors      []string
	RuntimeMin  int
	ReleaseYear int
}

// Item is a catalog movie. Read-only during a recommendation request.
type Item struct {
	ID            int
	Genres        []string
	Directors     []string
	Actors        []string
	ReleaseYear   int
	RuntimeMin    int
	AverageRating float64 // 0-10
	RatingCount   int
	Popularity    float64 // 0-100
}

// RuntimePreference describes a user's preferred runtime band, in minutes.
type RuntimePreference struct {
	Min   float64
	Max   float64
	Ideal float64
}

// YearPreference describes a user's preferred release-year band.
type YearPreference struct {
	Min float64
	Max float64
}

// Preferences is the attribute-level preference model derived from a
// user's rating history. Genre/director/actor scores are absent (not
// zero) when unknown, to distinguish "no signal" from "disliked".
type Preferences struct {
	Genres          map[string]float64 // score in [-1,1]
	Directors       map[string]float64
	Actors          map[string]float64
	RuntimePref     *RuntimePreference // defaults when no signal; nil only in a Degenerate profile
	YearPref        *YearPreference    // defaults when no signal; nil only in a Degenerate profile
	RatingThreshold float64
}

// UserProfile is derived fresh per request and discarded after the
// response is built; it is never shared across requests.
type UserProfile struct {
	UserID         string
	RatingCount    int
	AvgRating      float64
	RatingVariance float64
	TimeActiveDays int
	Engagement     float64
	SessionDepth   float64
	RecencyScore   float64
	RecentActions  []Action // newest-first, len <= SequenceWindow
	Preferences    Preferences
}

// Degenerate returns a zero-value profile for the given user, used when
// a downstream TrackingService read fails. Corresponds to the spec's
// PROFILE_DEGRADED internal error path: never surfaced to the caller.
func Degenerate(userID string) UserProfile {
	return UserProfile{
		UserID:        userID,
		RecentActions: []Action{},
		Preferences: Preferences{
			Genres:          map[string]float64{},
			Directors:       map[string]float64{},
			Actors:          map[string]float64{},
			RatingThreshold: RatingThreshold,
		},
	}
}

// Weights is a normalized (sums to 1, all non-negative) blend of the
// four strategy scores, selected by the weight policy (§4.6).
type Weights struct {
	Content       float64
	Collaborative float64
	Sequence      float64
	Rule          float64
}

// ScoreRecord is one strategy's opinion about one candidate item.
type ScoreRecord struct {
	ItemID int
	Item   Item
	Score  float64 // in [0,1]
	Source string  // e.g. "content", "content-cold", "collaborative-matrix"
}

// Reason is an explanation tag attached to a HybridRecord. The taxonomy
// is fixed; human-readable display strings are a presentation-layer
// concern outside this package.
type Reason string

const (
	ReasonStrongContent   Reason = "STRONG_CONTENT"
	ReasonSimilarUsers    Reason = "SIMILAR_USERS"
	ReasonSessionFlow     Reason = "SESSION_FLOW"
	ReasonOnboardingMatch Reason = "ONBOARDING_MATCH"
)

// HybridRecord is the final, fused per-item recommendation.
type HybridRecord struct {
	ItemID             int
	Item               Item
	ContentScore       float64
	CollaborativeScore float64
	SequenceScore      float64
	RuleScore          float64
	Weights            Weights
	Score              float64 // in [0,1]
	Source             string  // always "hybrid"
	Explanation        []Reason
}

// Options configures a single recommend call.
type Options struct {
	Count               int
	ExcludeRated        bool
	ExcludeWatchlist    bool
	MinScore            float64
	DiversityFactor     float64
	IncludeExplanations bool
}

// DefaultOptions returns the spec's documented option defaults.
func DefaultOptions() Options {
	return Options{
		Count:               25,
		ExcludeRated:        true,
		ExcludeWatchlist:    true,
		MinScore:            0.5,
		DiversityFactor:     0.25,
		IncludeExplanations: false,
	}
}
