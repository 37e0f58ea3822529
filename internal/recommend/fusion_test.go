// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"math"
	"testing"
)

func TestFuseArithmetic(t *testing.T) {
	// spec §8 S3: content=0.8, collab=0.6, sequence=0.7, rule=0.5,
	// weights {0.4,0.3,0.2,0.1} -> hybrid score = 0.69.
	item := Item{ID: 1}
	weights := Weights{Content: 0.4, Collaborative: 0.3, Sequence: 0.2, Rule: 0.1}

	content := []ScoreRecord{{ItemID: 1, Item: item, Score: 0.8}}
	collaborative := []ScoreRecord{{ItemID: 1, Item: item, Score: 0.6}}
	sequence := []ScoreRecord{{ItemID: 1, Item: item, Score: 0.7}}
	rule := []ScoreRecord{{ItemID: 1, Item: item, Score: 0.5}}

	records := Fuse(content, collaborative, sequence, rule, weights, false)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if math.Abs(records[0].Score-0.69) > 1e-9 {
		t.Errorf("hybrid score = %v, want 0.69", records[0].Score)
	}
}

func TestFuseMissingStrategyDefaultsToZero(t *testing.T) {
	item := Item{ID: 1}
	weights := Weights{Content: 0.5, Collaborative: 0.5}

	content := []ScoreRecord{{ItemID: 1, Item: item, Score: 1}}
	records := Fuse(content, nil, nil, nil, weights, false)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].CollaborativeScore != 0 || records[0].SequenceScore != 0 || records[0].RuleScore != 0 {
		t.Errorf("expected zero defaults, got %+v", records[0])
	}
}

func TestFuseUnionOfItems(t *testing.T) {
	a, b := Item{ID: 1}, Item{ID: 2}
	weights := Weights{Content: 1}

	content := []ScoreRecord{{ItemID: 1, Item: a, Score: 0.5}}
	collaborative := []ScoreRecord{{ItemID: 2, Item: b, Score: 0.9}}

	records := Fuse(content, collaborative, nil, nil, weights, false)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (union of both strategy outputs)", len(records))
	}
}

func TestExplanationsThresholds(t *testing.T) {
	weights := Weights{Content: 0.3, Collaborative: 0.3, Sequence: 0.3, Rule: 0.15}
	rec := HybridRecord{ContentScore: 0.8, CollaborativeScore: 0.8, SequenceScore: 0.8, RuleScore: 0.65}

	reasons := explanations(rec, weights)
	want := map[Reason]bool{
		ReasonStrongContent:   true,
		ReasonSimilarUsers:    true,
		ReasonSessionFlow:     true,
		ReasonOnboardingMatch: true,
	}
	if len(reasons) != len(want) {
		t.Fatalf("got %d reasons, want %d: %v", len(reasons), len(want), reasons)
	}
	for _, r := range reasons {
		if !want[r] {
			t.Errorf("unexpected reason %v", r)
		}
	}
}

func TestExplanationsBelowWeightThresholdSuppressed(t *testing.T) {
	// content score clears the value threshold but the weight is too low.
	weights := Weights{Content: 0.1}
	rec := HybridRecord{ContentScore: 0.9}

	reasons := explanations(rec, weights)
	if len(reasons) != 0 {
		t.Errorf("got %v, want no reasons (weight below threshold)", reasons)
	}
}
