// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package personalize

import (
	"fmt"
	"testing"

	"github.com/showtimenow/showtimenow/internal/models"
)

func movie(title, description string, rating float64) models.MovieEntry {
	return models.MovieEntry{Title: title, Description: description, Rating: rating}
}

func titles(movies []models.MovieEntry) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestFilter_ChildViewer(t *testing.T) {
	profile := models.FamilyMemberProfile{Name: "Emma", Age: 8, Preferences: []string{"animation"}}
	movies := []models.MovieEntry{
		movie("Puppy Tales", "A fun family animation", 4.2),
		movie("Dark Verdict", "A gritty courtroom drama", 4.0),
		movie("Super Race", "A family racing comedy", 4.9),
		movie("Quiet Town", "A story about a small town", 4.0),
	}

	got := Filter(profile, AgeGroupChild, movies)

	// Only the 4.9 comedy is out, on rating. Child viewers are not gated on
	// genre or preferences, so even the drama stays.
	want := []string{"Puppy Tales", "Dark Verdict", "Quiet Town"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", titles(got), want)
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestFilter_TeenViewer(t *testing.T) {
	profile := models.FamilyMemberProfile{Name: "Sarah", Age: 15, Preferences: []string{"romance"}}
	movies := []models.MovieEntry{
		movie("Mad Road", "Non-stop action for young viewers", 4.3),
		movie("First Dance", "A teen romance comedy", 4.5),
		movie("Slow River", "A meditative drama", 4.0),
		movie("High Score", "An action epic", 4.9),
	}

	got := Filter(profile, AgeGroupTeen, movies)

	// The action titles miss the romance preference or the rating ceiling,
	// and the drama misses the teen genres.
	want := []string{"First Dance"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", titles(got), want)
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestFilter_PreferenceMismatchRejected(t *testing.T) {
	// A genre hit alone is not enough for non-child viewers: the movie text
	// must also match a stated preference.
	profile := models.FamilyMemberProfile{Name: "John", Age: 35, Preferences: []string{"romance"}}
	movies := []models.MovieEntry{
		movie("Heat", "Non-stop action", 4.2),
		movie("First Dance", "A teen romance comedy", 4.5),
	}

	got := Filter(profile, AgeGroupAdult, movies)

	if len(got) != 1 || got[0].Title != "First Dance" {
		t.Errorf("got %v, want only First Dance", titles(got))
	}
}

func TestFilter_ChildRatingOnly(t *testing.T) {
	// Child viewers skip the genre and preference gates entirely; only the
	// rating ceiling applies on the first pass.
	profile := models.FamilyMemberProfile{Name: "Emma", Age: 8}
	movies := []models.MovieEntry{
		movie("Inception", "A mind-bending thriller drama", 4.4),
	}

	got := Filter(profile, AgeGroupChild, movies)

	if len(got) != 1 || got[0].Title != "Inception" {
		t.Errorf("got %v, want Inception kept", titles(got))
	}
}

func TestFilter_TeenGenreMissRejected(t *testing.T) {
	profile := models.FamilyMemberProfile{Name: "Sarah", Age: 15, Preferences: []string{"action"}}
	movies := []models.MovieEntry{
		movie("Quiet Town", "A story about a small town", 4.0),
		movie("Mad Road", "Non-stop action", 4.3),
	}

	got := Filter(profile, AgeGroupTeen, movies)

	if len(got) != 1 || got[0].Title != "Mad Road" {
		t.Errorf("got %v, want only Mad Road", titles(got))
	}
}

func TestFilter_AgeOnlyRetry(t *testing.T) {
	// Nothing survives the strict pass, but age-appropriate titles exist:
	// the age-only retry must surface them instead of an empty page.
	profile := models.FamilyMemberProfile{Name: "Sarah", Age: 15}
	movies := []models.MovieEntry{
		movie("Quiet Town", "A story about a small town", 4.0),
		movie("Dark Verdict", "A gritty courtroom drama", 4.0),
	}

	got := Filter(profile, AgeGroupTeen, movies)

	if len(got) != 1 || got[0].Title != "Quiet Town" {
		t.Errorf("got %v, want only Quiet Town", titles(got))
	}
}

func TestFilter_NeverGrows(t *testing.T) {
	profile := models.FamilyMemberProfile{Name: "John", Age: 35}
	movies := []models.MovieEntry{
		movie("Mad Road", "Non-stop action", 4.3),
		movie("Dark Verdict", "A gritty drama", 4.0),
		movie("Quiet Town", "A story about a small town", 4.0),
	}

	for _, band := range []AgeGroup{AgeGroupChild, AgeGroupTeen, AgeGroupAdult} {
		got := Filter(profile, band, movies)
		if len(got) > len(movies) {
			t.Errorf("band %q: filter grew the list: %d > %d", band, len(got), len(movies))
		}
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	profile := models.FamilyMemberProfile{Name: "John", Age: 35}
	if got := Filter(profile, AgeGroupAdult, nil); len(got) != 0 {
		t.Errorf("got %v, want empty", titles(got))
	}
}

func TestSegment(t *testing.T) {
	result := &models.PersonalizedResult{}
	for i := 0; i < 16; i++ {
		result.Movies = append(result.Movies, movie(fmt.Sprintf("m%d", i), "d", 4.0))
	}

	segment(result)

	if len(result.Recommendations) != 6 {
		t.Errorf("recommendations = %d, want 6", len(result.Recommendations))
	}
	if len(result.Watchlist) != 4 {
		t.Errorf("watchlist = %d, want 4", len(result.Watchlist))
	}
	if len(result.RecentlyWatched) != 4 {
		t.Errorf("recently watched = %d, want 4", len(result.RecentlyWatched))
	}

	// Every section starts at the head of the list, so the sections overlap.
	for _, sec := range [][]models.MovieEntry{result.Recommendations, result.Watchlist, result.RecentlyWatched} {
		if sec[0].Title != "m0" {
			t.Errorf("section does not start at the head of the list: %q", sec[0].Title)
		}
	}
}

func TestSegment_ShortList(t *testing.T) {
	tests := []struct {
		count                  int
		rec, watchlist, recent int
	}{
		{2, 2, 2, 2},
		{4, 4, 4, 4},
		{5, 5, 4, 4},
	}

	for _, tt := range tests {
		result := &models.PersonalizedResult{}
		for i := 0; i < tt.count; i++ {
			result.Movies = append(result.Movies, movie(fmt.Sprintf("m%d", i), "d", 4.0))
		}

		segment(result)

		if len(result.Recommendations) != tt.rec {
			t.Errorf("%d movies: recommendations = %d, want %d", tt.count, len(result.Recommendations), tt.rec)
		}
		if len(result.Watchlist) != tt.watchlist {
			t.Errorf("%d movies: watchlist = %d, want %d", tt.count, len(result.Watchlist), tt.watchlist)
		}
		if len(result.RecentlyWatched) != tt.recent {
			t.Errorf("%d movies: recently watched = %d, want %d", tt.count, len(result.RecentlyWatched), tt.recent)
		}
	}
}
