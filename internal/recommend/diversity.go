// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import "sort"

const (
	genreOverlapPenalty    = 0.3
	directorOverlapPenalty = 0.2
)

// Diversify applies the greedy overlap penalty (spec §4.7): records are
// walked in descending-score order, and any record sharing a genre or
// director with an already-selected record has its score discounted.
// Records are never dropped, only rescored; diversityFactor <= 0 skips
// the stage entirely.
func Diversify(records []HybridRecord, diversityFactor float64) []HybridRecord {
	if diversityFactor <= 0 {
		return records
	}

	ordered := make([]HybridRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	seenGenres := make(map[string]struct{})
	seenDirectors := make(map[string]struct{})

	for i := range ordered {
		rec := &ordered[i]

		hasGenreOverlap := intersects(rec.Item.Genres, seenGenres)
		hasDirectorOverlap := intersects(rec.Item.Directors, seenDirectors)

		var penalty float64
		if hasGenreOverlap {
			penalty += genreOverlapPenalty
		}
		if hasDirectorOverlap {
			penalty += directorOverlapPenalty
		}
		rec.Score *= 1 - penalty*diversityFactor

		for _, g := range rec.Item.Genres {
			seenGenres[g] = struct{}{}
		}
		for _, d := range rec.Item.Directors {
			seenDirectors[d] = struct{}{}
		}
	}
	return ordered
}

func intersects(attrs []string, seen map[string]struct{}) bool {
	for _, a := range attrs {
		if _, ok := seen[a]; ok {
			return true
		}
	}
	return false
}

// CutoffAndRank drops records below minScore, sorts the remainder
// descending by score (ties broken ascending by itemId), and returns
// at most count records.
func CutoffAndRank(records []HybridRecord, minScore float64, count int) []HybridRecord {
	kept := make([]HybridRecord, 0, len(records))
	for _, rec := range records {
		if rec.Score >= minScore {
			kept = append(kept, rec)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return kept[i].ItemID < kept[j].ItemID
	})

	if count >= 0 && len(kept) > count {
		kept = kept[:count]
	}
	return kept
}
