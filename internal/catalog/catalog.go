// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package catalog builds the non-personalized movie listing from the
// recommended-movies and theatres entries, and merges personalized lists
// into it without duplicates.
package catalog

import (
	"context"
	"strings"

	"github.com/showtimenow/showtimenow/internal/config"
	"github.com/showtimenow/showtimenow/internal/content"
	"github.com/showtimenow/showtimenow/internal/logging"
	"github.com/showtimenow/showtimenow/internal/models"
)

// theatreDescription annotates movies sourced from the theatres entry,
// which carries names and posters but no synopsis.
const theatreDescription = "Now showing in theatres"

// Service assembles movie listings. All fetches are best-effort: a missing
// or failing source contributes nothing instead of failing the listing.
type Service struct {
	client content.Client
	cfg    *config.ContentstackConfig
}

// NewService creates a catalog service over the given content client.
func NewService(client content.Client, cfg *config.ContentstackConfig) *Service {
	return &Service{client: client, cfg: cfg}
}

// Movies returns the merged movie listing: recommended titles first, then
// theatre titles not already present. Duplicate titles are detected by
// case-insensitive exact match.
func (s *Service) Movies(ctx context.Context) []models.MovieEntry {
	recommended := s.recommendedMovies(ctx)
	theatre := s.theatreMovies(ctx)
	return Merge(recommended, theatre)
}

// MergePersonalized overlays a personalized list onto the default listing.
// Personalized entries win on title collisions and lead the merged order.
func (s *Service) MergePersonalized(defaults, personalized []models.MovieEntry) []models.MovieEntry {
	return Merge(personalized, defaults)
}

// Merge concatenates primary and secondary, dropping secondary entries whose
// title already appears (any case) in the result.
func Merge(primary, secondary []models.MovieEntry) []models.MovieEntry {
	merged := make([]models.MovieEntry, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary)+len(secondary))

	for _, lists := range [][]models.MovieEntry{primary, secondary} {
		for _, m := range lists {
			key := strings.ToLower(strings.TrimSpace(m.Title))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, m)
		}
	}
	return merged
}

func (s *Service) recommendedMovies(ctx context.Context) []models.MovieEntry {
	if s.cfg.MoviesEntryID == "" {
		return nil
	}

	entry, err := s.client.FetchEntry(ctx, s.cfg.MoviesContentType, s.cfg.MoviesEntryID, &content.FetchOptions{
		IncludeRefs: []string{"movies_blocks.movie_1"},
	})
	if err != nil {
		logging.Warn().Err(err).Msg("Recommended movies fetch failed, listing continues without them")
		return nil
	}

	movies := entry.Movies()
	for i := range movies {
		movies[i].Source = "recommended"
	}
	return movies
}

func (s *Service) theatreMovies(ctx context.Context) []models.MovieEntry {
	if s.cfg.TheatresEntryID == "" {
		return nil
	}

	entry, err := s.client.FetchEntry(ctx, s.cfg.TheatresContentType, s.cfg.TheatresEntryID, &content.FetchOptions{
		IncludeRefs: []string{"main_block.theatre_1"},
	})
	if err != nil {
		logging.Warn().Err(err).Msg("Theatre movies fetch failed, listing continues without them")
		return nil
	}
	if entry == nil {
		return nil
	}

	var movies []models.MovieEntry
	for _, block := range entry.MainBlock {
		for _, sub := range block.Theatre.SubBlocks {
			tm := sub.SubTheatre
			if tm.MovieName == "" {
				continue
			}
			movie := models.MovieEntry{
				Title:       tm.MovieName,
				Description: theatreDescription,
				Rating:      models.DefaultMovieRating,
				ImageURL:    tm.MovieImage.URL,
				LinkHref:    models.DefaultMovieLink,
				Source:      "theatre",
			}
			if movie.ImageURL == "" {
				movie.ImageURL = models.DefaultMovieImageURL
			}
			movies = append(movies, movie)
		}
	}
	return movies
}

// Chrome holds the site header and footer entries. Either may be nil when
// the CMS is unconfigured or the fetch fails.
type Chrome struct {
	Header *models.Entry `json:"header,omitempty"`
	Footer *models.Entry `json:"footer,omitempty"`
}

// SiteChrome fetches the header and footer navigation entries, best-effort.
func (s *Service) SiteChrome(ctx context.Context) Chrome {
	return Chrome{
		Header: s.chromeEntry(ctx, s.cfg.HeaderContentType, s.cfg.HeaderEntryID),
		Footer: s.chromeEntry(ctx, s.cfg.FooterContentType, s.cfg.FooterEntryID),
	}
}

func (s *Service) chromeEntry(ctx context.Context, contentTypeID, entryID string) *models.Entry {
	if entryID == "" {
		return nil
	}
	entry, err := s.client.FetchEntry(ctx, contentTypeID, entryID, nil)
	if err != nil {
		logging.Warn().Err(err).Str("content_type", contentTypeID).Msg("Site chrome fetch failed")
		return nil
	}
	return entry
}
