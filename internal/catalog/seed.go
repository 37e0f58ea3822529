// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package catalog

import "github.com/tomtom215/movierec/internal/recommend"

// SeedItems returns a small, deterministic candidate set for a
// standalone deployment or demo run. It closes the "getAvailableMovies"
// gap the source spec leaves open (the original returns an empty list
// unconditionally); a production deployment replaces StaticCatalog
// with a database-backed Catalog seeded from a real title database.
func SeedItems() []recommend.Item {
	return []recommend.Item{
		{ID: 1, Genres: []string{"drama", "crime"}, Directors: []string{"Francis Ford Coppola"}, Actors: []string{"Marlon Brando", "Al Pacino"}, ReleaseYear: 1972, RuntimeMin: 175, AverageRating: 9.2, RatingCount: 1_800_000, Popularity: 95},
		{ID: 2, Genres: []string{"drama"}, Directors: []string{"Frank Darabont"}, Actors: []string{"Tim Robbins", "Morgan Freeman"}, ReleaseYear: 1994, RuntimeMin: 142, AverageRating: 9.3, RatingCount: 2_600_000, Popularity: 98},
		{ID: 3, Genres: []string{"action", "sci-fi"}, Directors: []string{"Christopher Nolan"}, Actors: []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt"}, ReleaseYear: 2010, RuntimeMin: 148, AverageRating: 8.8, RatingCount: 2_300_000, Popularity: 96},
		{ID: 4, Genres: []string{"action", "crime"}, Directors: []string{"Christopher Nolan"}, Actors: []string{"Christian Bale", "Heath Ledger"}, ReleaseYear: 2008, RuntimeMin: 152, AverageRating: 9.0, RatingCount: 2_700_000, Popularity: 97},
		{ID: 5, Genres: []string{"comedy", "romance"}, Directors: []string{"Rob Reiner"}, Actors: []string{"Billy Crystal", "Meg Ryan"}, ReleaseYear: 1989, RuntimeMin: 96, AverageRating: 7.7, RatingCount: 200_000, Popularity: 60},
		{ID: 6, Genres: []string{"sci-fi", "adventure"}, Directors: []string{"Denis Villeneuve"}, Actors: []string{"Timothée Chalamet", "Rebecca Ferguson"}, ReleaseYear: 2021, RuntimeMin: 155, AverageRating: 8.0, RatingCount: 700_000, Popularity: 88},
		{ID: 7, Genres: []string{"horror"}, Directors: []string{"Ari Aster"}, Actors: []string{"Toni Collette"}, ReleaseYear: 2018, RuntimeMin: 127, AverageRating: 7.3, RatingCount: 250_000, Popularity: 55},
		{ID: 8, Genres: []string{"animation", "adventure"}, Directors: []string{"Hayao Miyazaki"}, Actors: []string{"Rumi Hiiragi"}, ReleaseYear: 2001, RuntimeMin: 125, AverageRating: 8.6, RatingCount: 750_000, Popularity: 80},
		{ID: 9, Genres: []string{"drama", "romance"}, Directors: []string{"Céline Sciamma"}, Actors: []string{"Noémie Merlant", "Adèle Haenel"}, ReleaseYear: 2019, RuntimeMin: 122, AverageRating: 8.1, RatingCount: 120_000, Popularity: 45},
		{ID: 10, Genres: []string{"action", "thriller"}, Directors: []string{"George Miller"}, Actors: []string{"Tom Hardy", "Charlize Theron"}, ReleaseYear: 2015, RuntimeMin: 120, AverageRating: 8.1, RatingCount: 1_100_000, Popularity: 85},
		{ID: 11, Genres: []string{"comedy"}, Directors: []string{"Taika Waititi"}, Actors: []string{"Roman Griffin Davis"}, ReleaseYear: 2019, RuntimeMin: 108, AverageRating: 7.9, RatingCount: 220_000, Popularity: 62},
		{ID: 12, Genres: []string{"drama", "biography"}, Directors: []string{"Bradley Cooper"}, Actors: []string{"Bradley Cooper", "Carey Mulligan"}, ReleaseYear: 2023, RuntimeMin: 129, AverageRating: 7.0, RatingCount: 90_000, Popularity: 50},
		{ID: 13, Genres: []string{"sci-fi", "thriller"}, Directors: []string{"Alex Garland"}, Actors: []string{"Alicia Vikander", "Domhnall Gleeson"}, ReleaseYear: 2014, RuntimeMin: 108, AverageRating: 7.7, RatingCount: 480_000, Popularity: 70},
		{ID: 14, Genres: []string{"crime", "drama"}, Directors: []string{"Martin Scorsese"}, Actors: []string{"Robert De Niro", "Joe Pesci"}, ReleaseYear: 1990, RuntimeMin: 145, AverageRating: 8.7, RatingCount: 1_100_000, Popularity: 82},
		{ID: 15, Genres: []string{"animation", "comedy"}, Directors: []string{"Byron Howard", "Rich Moore"}, Actors: []string{"Ginnifer Goodwin"}, ReleaseYear: 2016, RuntimeMin: 108, AverageRating: 8.0, RatingCount: 500_000, Popularity: 75},
	}
}
