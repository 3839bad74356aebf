// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package personalize

import "strings"

// AgeGroup is the audience band a viewer or movie belongs to.
type AgeGroup string

// Audience bands. Movies may additionally carry AgeGroupGeneral, meaning
// suitable for any viewer.
const (
	AgeGroupChild   AgeGroup = "child"
	AgeGroupTeen    AgeGroup = "teen"
	AgeGroupAdult   AgeGroup = "adult"
	AgeGroupGeneral AgeGroup = "general"
)

// Age band boundaries. A viewer is a child below 13 and an adult at 18.
const (
	teenMinAge  = 13
	adultMinAge = 18
)

// AgeGroupForAge maps a viewer age to its audience band.
func AgeGroupForAge(age int) AgeGroup {
	switch {
	case age < teenMinAge:
		return AgeGroupChild
	case age < adultMinAge:
		return AgeGroupTeen
	default:
		return AgeGroupAdult
	}
}

// inferMovieAgeGroup derives a band from the movie description when the CMS
// entry does not carry an explicit one. Titles are ignored so a punchy name
// like "Action Heroes" cannot override what the description says the movie
// is. Checked child-first so family titles never land in an older band.
func inferMovieAgeGroup(description string) AgeGroup {
	text := strings.ToLower(description)

	switch {
	case containsAny(text, "animation", "family"):
		return AgeGroupChild
	case containsAny(text, "action", "adventure", "sci-fi"):
		return AgeGroupTeen
	case containsAny(text, "drama", "thriller", "crime"):
		return AgeGroupAdult
	default:
		return AgeGroupGeneral
	}
}

// movieAgeGroup returns the explicit CMS band when present, otherwise the
// inferred one.
func movieAgeGroup(description, explicit string) AgeGroup {
	switch AgeGroup(strings.ToLower(explicit)) {
	case AgeGroupChild, AgeGroupTeen, AgeGroupAdult, AgeGroupGeneral:
		return AgeGroup(strings.ToLower(explicit))
	}
	return inferMovieAgeGroup(description)
}

// isAgeAppropriate reports whether a movie band may be shown to a viewer
// band. Children only see child and general titles; teens additionally see
// teen titles; adults see everything.
func isAgeAppropriate(viewer, movie AgeGroup) bool {
	switch viewer {
	case AgeGroupChild:
		return movie == AgeGroupChild || movie == AgeGroupGeneral
	case AgeGroupTeen:
		return movie == AgeGroupChild || movie == AgeGroupTeen || movie == AgeGroupGeneral
	default:
		return true
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
