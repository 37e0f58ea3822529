// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

// WeightPolicy selects and normalizes a base weight vector by profile
// maturity (spec §4.6). Early users lean on interpretable signals
// (content + rule); mature users lean on behavior-driven collaborative
// signal; the sequence share tracks engagement recency/depth.
func WeightPolicy(profile UserProfile) Weights {
	var w Weights
	switch {
	case profile.RatingCount < 5:
		w = Weights{
			Content:       0.40,
			Collaborative: 0.10,
			Sequence:      0.20 + 0.1*profile.RecencyScore,
			Rule:          0.30,
		}
	case profile.RatingCount < 25:
		w = Weights{
			Content:       0.35,
			Collaborative: 0.25,
			Sequence:      0.25 + 0.05*profile.SessionDepth,
			Rule:          0.15,
		}
	default:
		w = Weights{
			Content:       0.25,
			Collaborative: 0.45,
			Sequence:      0.20 + 0.1*profile.RecencyScore,
			Rule:          0.10,
		}
	}
	return normalizeWeights(w)
}

// normalizeWeights clamps every component to >= 0, then rescales so the
// vector sums to 1 (treating a zero sum as 1 to avoid division by zero).
func normalizeWeights(w Weights) Weights {
	w.Content = maxFloat(0, w.Content)
	w.Collaborative = maxFloat(0, w.Collaborative)
	w.Sequence = maxFloat(0, w.Sequence)
	w.Rule = maxFloat(0, w.Rule)

	sum := w.Content + w.Collaborative + w.Sequence + w.Rule
	if sum == 0 {
		sum = 1
	}
	return Weights{
		Content:       w.Content / sum,
		Collaborative: w.Collaborative / sum,
		Sequence:      w.Sequence / sum,
		Rule:          w.Rule / sum,
	}
}
