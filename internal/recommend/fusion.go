// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

const (
	strongContentThreshold   = 0.7
	strongContentWeight      = 0.2
	similarUsersThreshold    = 0.7
	similarUsersWeight       = 0.2
	sessionFlowThreshold     = 0.7
	sessionFlowWeight        = 0.2
	onboardingMatchThreshold = 0.6
	onboardingMatchWeight    = 0.1
)

// Fuse builds itemId -> HybridRecord from the four scorers' independent
// outputs (spec §4.7). Each per-strategy score slot defaults to 0 and
// is overwritten by that strategy's record for the item; scorers must
// not emit duplicate itemIDs, so last-write-wins never triggers on
// well-behaved input.
func Fuse(content, collaborative, sequence, rule []ScoreRecord, weights Weights, explain bool) []HybridRecord {
	byID := make(map[int]*HybridRecord)

	ensure := func(sr ScoreRecord) *HybridRecord {
		rec, ok := byID[sr.ItemID]
		if !ok {
			rec = &HybridRecord{ItemID: sr.ItemID, Item: sr.Item, Weights: weights, Source: "hybrid"}
			byID[sr.ItemID] = rec
		}
		return rec
	}

	for _, sr := range content {
		ensure(sr).ContentScore = sr.Score
	}
	for _, sr := range collaborative {
		ensure(sr).CollaborativeScore = sr.Score
	}
	for _, sr := range sequence {
		ensure(sr).SequenceScore = sr.Score
	}
	for _, sr := range rule {
		ensure(sr).RuleScore = sr.Score
	}

	records := make([]HybridRecord, 0, len(byID))
	for _, rec := range byID {
		rec.Score = rec.ContentScore*weights.Content +
			rec.CollaborativeScore*weights.Collaborative +
			rec.SequenceScore*weights.Sequence +
			rec.RuleScore*weights.Rule

		if explain {
			rec.Explanation = explanations(*rec, weights)
		}
		records = append(records, *rec)
	}
	return records
}

// explanations emits a reason tag for every (subScore, subWeight) pair
// that clears its fixed threshold (spec §4.7). The taxonomy is fixed;
// display strings are a presentation-layer concern.
func explanations(rec HybridRecord, weights Weights) []Reason {
	var reasons []Reason
	if rec.ContentScore > strongContentThreshold && weights.Content > strongContentWeight {
		reasons = append(reasons, ReasonStrongContent)
	}
	if rec.CollaborativeScore > similarUsersThreshold && weights.Collaborative > similarUsersWeight {
		reasons = append(reasons, ReasonSimilarUsers)
	}
	if rec.SequenceScore > sessionFlowThreshold && weights.Sequence > sessionFlowWeight {
		reasons = append(reasons, ReasonSessionFlow)
	}
	if rec.RuleScore > onboardingMatchThreshold && weights.Rule > onboardingMatchWeight {
		reasons = append(reasons, ReasonOnboardingMatch)
	}
	return reasons
}
