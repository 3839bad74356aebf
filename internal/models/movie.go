// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package models

// MovieEntry is a normalized movie as served to clients. It is sourced from
// CMS content blocks, read-only, and re-fetched on every request.
type MovieEntry struct {
	UID         string  `json:"uid"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	AgeGroup    string  `json:"age_group,omitempty"`
	ImageURL    string  `json:"image_url"`
	LinkHref    string  `json:"link_href"`

	// Reason explains why this movie was selected for the viewer.
	// Empty for non-personalized listings.
	Reason string `json:"reason,omitempty"`

	// Source identifies where the entry came from (recommended, theatre).
	Source string `json:"source,omitempty"`
}

// PersonalizedResult is the output of the variant resolver for one profile.
// Constructed fresh per request, never mutated after return.
type PersonalizedResult struct {
	Success    bool   `json:"success"`
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`

	// Movies is the personalized list in resolver order. The HTTP layer
	// overlays it on the default listing, personalized titles first.
	Movies []MovieEntry `json:"movies"`

	// Recommendations, Watchlist and RecentlyWatched are prefixes of
	// Movies, capped at 6/4/4 respectively.
	Recommendations []MovieEntry `json:"recommendations"`
	Watchlist       []MovieEntry `json:"watchlist"`
	RecentlyWatched []MovieEntry `json:"recently_watched"`

	// VariantUsed is the content variant id that produced Movies, when the
	// primary path succeeded.
	VariantUsed string `json:"variant_used,omitempty"`

	// Fallback is true when the static fallback list was served.
	Fallback bool `json:"fallback,omitempty"`
}

// MovieListResponse is the payload for the movie listing endpoint.
type MovieListResponse struct {
	Movies []MovieEntry `json:"movies"`
}
