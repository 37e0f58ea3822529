// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"context"

	"github.com/tomtom215/movierec/internal/recommend"
)

// Predictor is the narrow contract the collaborative scorer needs from
// an external matrix-factorization model. An empty, non-error result
// means "no prediction available" and triggers the user-based fallback.
type Predictor interface {
	Predict(ctx context.Context, userID string, candidateItemIDs []int) (map[int]float64, error)
}

// SimilarUser is one neighbor returned by a SimilarUserFinder.
type SimilarUser struct {
	UserID     string
	Similarity float64 // in [0,1]
}

// SimilarUserFinder locates behaviorally similar users for the
// collaborative scorer's fallback path.
type SimilarUserFinder interface {
	FindSimilarUsers(ctx context.Context, userID string) ([]SimilarUser, error)
}

// RatingLookup answers "what did this user rate this item?" for the
// user-based collaborative-filtering fallback.
type RatingLookup interface {
	UserRating(ctx context.Context, userID string, itemID int) (value float64, rated bool)
}

// Collaborative scores candidates via matrix-factorization prediction,
// falling back to user-based collaborative filtering, and finally to
// popularity, in that order (spec §4.4).
func Collaborative(
	ctx context.Context,
	userID string,
	candidates []recommend.Item,
	predictor Predictor,
	finder SimilarUserFinder,
	ratings RatingLookup,
) []recommend.ScoreRecord {
	if predictions, err := predictor.Predict(ctx, userID, itemIDs(candidates)); err == nil && len(predictions) > 0 {
		byID := make(map[int]recommend.Item, len(candidates))
		for _, item := range candidates {
			byID[item.ID] = item
		}

		records := make([]recommend.ScoreRecord, 0, len(predictions))
		for itemID, predicted := range predictions {
			item, ok := byID[itemID]
			if !ok {
				continue
			}
			records = append(records, recommend.ScoreRecord{
				ItemID: itemID,
				Item:   item,
				Score:  recommend.Normalize(predicted),
				Source: "collaborative-matrix",
			})
		}
		return records
	}

	return userBasedCF(ctx, userID, candidates, finder, ratings)
}

func userBasedCF(
	ctx context.Context,
	userID string,
	candidates []recommend.Item,
	finder SimilarUserFinder,
	ratings RatingLookup,
) []recommend.ScoreRecord {
	similarUsers, err := finder.FindSimilarUsers(ctx, userID)
	if err != nil || len(similarUsers) == 0 {
		return recommend.PopularityFallback(candidates, "collaborative-cold")
	}

	records := make([]recommend.ScoreRecord, 0, len(candidates))
	for _, item := range candidates {
		if ContextCancelled(ctx) {
			return records
		}

		var weightedSum, similaritySum float64
		for _, su := range similarUsers {
			value, rated := ratings.UserRating(ctx, su.UserID, item.ID)
			if !rated {
				continue
			}
			weightedSum += value * su.Similarity
			similaritySum += su.Similarity
		}

		var score float64
		if similaritySum > 0 {
			score = recommend.Normalize(weightedSum / similaritySum)
		}

		records = append(records, recommend.ScoreRecord{
			ItemID: item.ID,
			Item:   item,
			Score:  score,
			Source: "collaborative-cf",
		})
	}
	return records
}

func itemIDs(items []recommend.Item) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
