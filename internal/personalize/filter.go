// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package personalize

import (
	"strings"

	"github.com/showtimenow/showtimenow/internal/models"
)

// bandFilter holds the per-band content gates applied when the base entry
// must be filtered locally instead of served from a CMS variant.
type bandFilter struct {
	genres    []string
	maxRating float64
}

// Band filter tables. These mirror the audience rules configured on the CMS
// variants so the filtered path approximates the variant path.
var bandFilters = map[AgeGroup]bandFilter{
	AgeGroupChild: {
		genres:    []string{"animation", "family", "adventure", "comedy", "action", "sports"},
		maxRating: 4.5,
	},
	AgeGroupTeen: {
		genres:    []string{"action", "adventure", "comedy", "romance", "sci-fi"},
		maxRating: 4.8,
	},
	AgeGroupAdult: {
		genres:    []string{"action", "drama", "thriller", "romance", "comedy", "sci-fi"},
		maxRating: 5.0,
	},
}

// Segment caps for the personalized result.
const (
	recommendationsCap = 6
	watchlistCap       = 4
	recentlyWatchedCap = 4
)

// Filter selects the movies suitable for a profile in the given band.
//
// A movie passes when its rating is at or below the band ceiling, its
// description matches a band genre, and its text matches a profile
// preference. Child viewers are gated on rating only, so a sparse child
// catalog still renders. If nothing passes, an age-appropriateness check
// alone is retried so a viewer never sees an empty page while appropriate
// titles exist.
func Filter(profile models.FamilyMemberProfile, band AgeGroup, movies []models.MovieEntry) []models.MovieEntry {
	bf, ok := bandFilters[band]
	if !ok {
		bf = bandFilters[AgeGroupAdult]
	}
	childViewer := profile.Age < teenMinAge

	filtered := make([]models.MovieEntry, 0, len(movies))
	for _, m := range movies {
		if m.Rating > bf.maxRating {
			continue
		}
		if !childViewer {
			if !containsAny(strings.ToLower(m.Description), bf.genres...) {
				continue
			}
			text := strings.ToLower(m.Title + " " + m.Description)
			if !matchesPreferences(text, profile.Preferences) {
				continue
			}
		}
		filtered = append(filtered, m)
	}

	if len(filtered) > 0 {
		return filtered
	}

	// Age-only retry.
	for _, m := range movies {
		if isAgeAppropriate(band, movieAgeGroup(m.Description, m.AgeGroup)) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func matchesPreferences(text string, preferences []string) bool {
	for _, p := range preferences {
		if p != "" && strings.Contains(text, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// segment fills the three page sections from the resolved movie list. Each
// section is a capped prefix of the same list, so a short list shows the
// same few titles in every section rather than leaving sections empty.
func segment(result *models.PersonalizedResult) {
	take := func(n int) []models.MovieEntry {
		if n > len(result.Movies) {
			n = len(result.Movies)
		}
		return result.Movies[:n]
	}
	result.Recommendations = take(recommendationsCap)
	result.Watchlist = take(watchlistCap)
	result.RecentlyWatched = take(recentlyWatchedCap)
}
