// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package models

// Defaults applied when the CMS omits optional movie fields. The client
// decodes into the typed schema below and normalization fills the gaps, so
// downstream code never branches on missing data.
const (
	DefaultMovieRating      = 4.0
	DefaultMovieDescription = "A great movie for everyone."
	DefaultMovieImageURL    = "/api/placeholder/300/200"
	DefaultMovieLink        = "#"
)

// Entry is a single content record retrieved from the content repository.
// Movie-type entries carry MoviesBlocks; theatre-type entries carry MainBlock.
type Entry struct {
	UID          string             `json:"uid"`
	Title        string             `json:"title,omitempty"`
	MoviesBlocks []MovieBlock       `json:"movies_blocks,omitempty"`
	MainBlock    []TheatreMainBlock `json:"main_block,omitempty"`
}

// MovieBlock wraps one movie inside a movies-type entry.
type MovieBlock struct {
	Movie Movie `json:"movie_1"`
}

// Movie is the raw CMS movie shape before normalization.
type Movie struct {
	UID              string     `json:"uid"`
	MovieName        string     `json:"movie_name"`
	MovieDescription string     `json:"movie_description"`
	StarRating       StarRating `json:"star_rating"`
	MovieImage       Asset      `json:"movie_image"`
	LinkMovie        Link       `json:"link_movie"`
	AgeGroup         string     `json:"age_group,omitempty"`
}

// StarRating holds a 0-5 rating value.
type StarRating struct {
	Value float64 `json:"value"`
}

// Asset is a CMS-hosted file reference.
type Asset struct {
	UID   string `json:"uid,omitempty"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

// Link is a CMS link field.
type Link struct {
	Title string `json:"title,omitempty"`
	HRef  string `json:"href"`
}

// TheatreMainBlock wraps one theatre inside a theatres-type entry.
type TheatreMainBlock struct {
	Theatre Theatre `json:"theatre_1"`
}

// Theatre groups the movies currently showing at one venue.
type Theatre struct {
	Name      string            `json:"theatre_name,omitempty"`
	SubBlocks []TheatreSubBlock `json:"sub_blocks"`
}

// TheatreSubBlock wraps one showing.
type TheatreSubBlock struct {
	SubTheatre TheatreMovie `json:"sub_theatre"`
}

// TheatreMovie is a movie currently showing in a theatre.
type TheatreMovie struct {
	MovieName    string `json:"movie_name"`
	MovieImage   Asset  `json:"movie_image"`
	MovieTrailer Asset  `json:"movie_trailer,omitempty"`
}

// Normalize converts the raw CMS movie into a MovieEntry, applying defaults
// for every missing optional field.
func (m Movie) Normalize() MovieEntry {
	e := MovieEntry{
		UID:         m.UID,
		Title:       m.MovieName,
		Description: m.MovieDescription,
		Rating:      m.StarRating.Value,
		AgeGroup:    m.AgeGroup,
		ImageURL:    m.MovieImage.URL,
		LinkHref:    m.LinkMovie.HRef,
	}
	if e.Rating == 0 {
		e.Rating = DefaultMovieRating
	}
	if e.Description == "" {
		e.Description = DefaultMovieDescription
	}
	if e.ImageURL == "" {
		e.ImageURL = DefaultMovieImageURL
	}
	if e.LinkHref == "" {
		e.LinkHref = DefaultMovieLink
	}
	return e
}

// Movies returns the normalized movie list of a movies-type entry, in
// block order.
func (e *Entry) Movies() []MovieEntry {
	if e == nil || len(e.MoviesBlocks) == 0 {
		return nil
	}
	movies := make([]MovieEntry, 0, len(e.MoviesBlocks))
	for _, block := range e.MoviesBlocks {
		movies = append(movies, block.Movie.Normalize())
	}
	return movies
}
