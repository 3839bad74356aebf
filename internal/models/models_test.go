// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestMovieNormalize_Defaults(t *testing.T) {
	m := Movie{UID: "blt1", MovieName: "Dune"}
	e := m.Normalize()

	if e.Rating != DefaultMovieRating {
		t.Errorf("Rating = %v, want default %v", e.Rating, DefaultMovieRating)
	}
	if e.Description != DefaultMovieDescription {
		t.Errorf("Description = %q, want default", e.Description)
	}
	if e.ImageURL != DefaultMovieImageURL {
		t.Errorf("ImageURL = %q, want placeholder", e.ImageURL)
	}
	if e.LinkHref != DefaultMovieLink {
		t.Errorf("LinkHref = %q, want %q", e.LinkHref, DefaultMovieLink)
	}
}

func TestMovieNormalize_PreservesValues(t *testing.T) {
	m := Movie{
		UID:              "blt2",
		MovieName:        "Inception",
		MovieDescription: "sci-fi thriller",
		StarRating:       StarRating{Value: 4.8},
		MovieImage:       Asset{URL: "https://images.example/inception.jpg"},
		LinkMovie:        Link{HRef: "/movies/inception"},
	}
	e := m.Normalize()

	if e.Title != "Inception" || e.Rating != 4.8 {
		t.Errorf("normalize lost values: %+v", e)
	}
	if e.Description != "sci-fi thriller" {
		t.Errorf("Description = %q, want original", e.Description)
	}
	if e.ImageURL != "https://images.example/inception.jpg" {
		t.Errorf("ImageURL = %q, want original", e.ImageURL)
	}
}

func TestEntryMovies_BlockOrder(t *testing.T) {
	entry := &Entry{
		UID: "blt3",
		MoviesBlocks: []MovieBlock{
			{Movie: Movie{MovieName: "First"}},
			{Movie: Movie{MovieName: "Second"}},
			{Movie: Movie{MovieName: "Third"}},
		},
	}

	movies := entry.Movies()
	if len(movies) != 3 {
		t.Fatalf("len(movies) = %d, want 3", len(movies))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if movies[i].Title != want {
			t.Errorf("movies[%d].Title = %q, want %q", i, movies[i].Title, want)
		}
	}
}

func TestEntryMovies_NilSafe(t *testing.T) {
	var entry *Entry
	if got := entry.Movies(); got != nil {
		t.Errorf("nil entry should produce nil movies, got %v", got)
	}
	if got := (&Entry{}).Movies(); got != nil {
		t.Errorf("empty entry should produce nil movies, got %v", got)
	}
}

func TestEntryDecode_MovieBlocks(t *testing.T) {
	raw := `{
		"uid": "bltbc9d",
		"movies_blocks": [
			{"movie_1": {
				"uid": "m1",
				"movie_name": "Demon Slayer",
				"movie_description": "animation adventure",
				"star_rating": {"value": 4.2},
				"movie_image": {"url": "https://img/ds.jpg"},
				"link_movie": {"href": "/movies/demonslayer"}
			}}
		]
	}`

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	movies := entry.Movies()
	if len(movies) != 1 {
		t.Fatalf("len(movies) = %d, want 1", len(movies))
	}
	if movies[0].Title != "Demon Slayer" || movies[0].Rating != 4.2 {
		t.Errorf("decoded movie = %+v", movies[0])
	}
}

func TestSeatTypeValid(t *testing.T) {
	for _, st := range []SeatType{SeatClassic, SeatClassicPlus, SeatPrime} {
		if !st.Valid() {
			t.Errorf("%q should be valid", st)
		}
	}
	if SeatType("recliner").Valid() {
		t.Error("unknown seat type should be invalid")
	}
}

func TestGenderValid(t *testing.T) {
	if !GenderMale.Valid() || !GenderFemale.Valid() {
		t.Error("male/female should be valid")
	}
	if Gender("other").Valid() {
		t.Error("unsupported gender value should be invalid")
	}
}
