// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package personalize

import (
	"context"
	"fmt"

	"github.com/showtimenow/showtimenow/internal/config"
	"github.com/showtimenow/showtimenow/internal/content"
	"github.com/showtimenow/showtimenow/internal/logging"
	"github.com/showtimenow/showtimenow/internal/metrics"
	"github.com/showtimenow/showtimenow/internal/models"
)

// fallbackMovies is served when no CMS path yields content. The list keeps
// the page populated for every audience band.
var fallbackMovies = []models.MovieEntry{
	{
		Title:       "Family Adventure",
		Description: "An exciting adventure the whole family can enjoy.",
		Rating:      4.5,
		AgeGroup:    string(AgeGroupGeneral),
		ImageURL:    models.DefaultMovieImageURL,
		LinkHref:    models.DefaultMovieLink,
		Reason:      "Popular with all audiences",
		Source:      "fallback",
	},
}

// Resolver runs the personalization chain for family member profiles.
type Resolver struct {
	client      content.Client
	contentType string
	cfg         *config.PersonalizeConfig
}

// NewResolver creates a resolver over the given content client.
func NewResolver(client content.Client, cs *config.ContentstackConfig, cfg *config.PersonalizeConfig) *Resolver {
	return &Resolver{
		client:      client,
		contentType: cs.MoviesContentType,
		cfg:         cfg,
	}
}

// Resolve produces the personalized movie list for one profile.
//
// The chain never returns an error: fetch failures are logged and resolution
// advances to the next step, ending at the static fallback. The returned
// result is always renderable.
func (r *Resolver) Resolve(ctx context.Context, profile models.FamilyMemberProfile) *models.PersonalizedResult {
	sel := SelectVariant(r.cfg, profile)

	result := &models.PersonalizedResult{
		MemberID:   profile.ID,
		MemberName: profile.Name,
	}

	if movies := r.resolveVariant(ctx, sel); len(movies) > 0 {
		result.Success = true
		result.Movies = movies
		result.VariantUsed = sel.VariantID
		r.finish(result, "variant")
		return result
	}

	if movies := r.resolveFiltered(ctx, profile, sel); len(movies) > 0 {
		result.Success = true
		result.Movies = movies
		r.finish(result, "filtered")
		return result
	}

	logging.Warn().
		Str("member_id", profile.ID).
		Str("age_group", string(sel.AgeGroup)).
		Msg("Serving static fallback content")

	result.Movies = append([]models.MovieEntry(nil), fallbackMovies...)
	result.Fallback = true
	r.finish(result, "fallback")
	return result
}

// resolveVariant fetches the audience variant of the movies entry.
func (r *Resolver) resolveVariant(ctx context.Context, sel VariantSelection) []models.MovieEntry {
	if sel.EntryID == "" || sel.VariantID == "" {
		return nil
	}

	entry, err := r.client.FetchEntry(ctx, r.contentType, sel.EntryID, &content.FetchOptions{
		VariantID:   sel.VariantID,
		IncludeRefs: []string{"movies_blocks.movie_1"},
	})
	if err != nil {
		logging.Warn().
			Err(err).
			Str("variant_id", sel.VariantID).
			Msg("Variant fetch failed, trying filtered base content")
		return nil
	}

	movies := entry.Movies()
	for i := range movies {
		movies[i].Reason = fmt.Sprintf("Curated for %s viewers", sel.AgeGroup)
		movies[i].Source = "variant"
	}
	return movies
}

// resolveFiltered fetches the base entry and filters it locally by profile.
func (r *Resolver) resolveFiltered(ctx context.Context, profile models.FamilyMemberProfile, sel VariantSelection) []models.MovieEntry {
	if sel.EntryID == "" {
		return nil
	}

	entry, err := r.client.FetchEntry(ctx, r.contentType, sel.EntryID, &content.FetchOptions{
		IncludeRefs: []string{"movies_blocks.movie_1"},
	})
	if err != nil {
		logging.Warn().
			Err(err).
			Str("entry_id", sel.EntryID).
			Msg("Base entry fetch failed, serving fallback content")
		return nil
	}

	movies := Filter(profile, sel.AgeGroup, entry.Movies())
	for i := range movies {
		movies[i].Reason = "Matches your preferences"
		movies[i].Source = "filtered"
	}
	return movies
}

func (r *Resolver) finish(result *models.PersonalizedResult, path string) {
	segment(result)
	metrics.PersonalizeRequests.WithLabelValues(path).Inc()
	metrics.PersonalizeMovieCount.Observe(float64(len(result.Movies)))

	logging.Debug().
		Str("member_id", result.MemberID).
		Str("path", path).
		Int("movies", len(result.Movies)).
		Msg("Personalization resolved")
}
