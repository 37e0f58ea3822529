// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package catalog

import "testing"

func TestSeedItemsHaveUniqueIDs(t *testing.T) {
	items := SeedItems()
	if len(items) == 0 {
		t.Fatal("SeedItems() returned no items")
	}

	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if seen[item.ID] {
			t.Errorf("duplicate item ID %d", item.ID)
		}
		seen[item.ID] = true
		if len(item.Genres) == 0 {
			t.Errorf("item %d has no genres", item.ID)
		}
		if item.ReleaseYear == 0 {
			t.Errorf("item %d has no release year", item.ID)
		}
	}
}
