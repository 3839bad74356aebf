// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package models defines the shared data structures for ShowTimeNow.
//
// Three groups of types live here:
//
//   - Domain types: FamilyMemberProfile, MovieEntry, PersonalizedResult,
//     Booking. These are what the service layer and HTTP handlers exchange.
//
//   - CMS wire schema: Entry, MovieBlock, Movie, TheatreEntry and friends.
//     These mirror the content repository's block structure and are decoded
//     once at the content client boundary. Every optional field has an
//     explicit default applied during normalization, so downstream code
//     never sees a half-populated movie.
//
//   - API envelope: APIResponse, Metadata, APIError. The standard wrapper
//     for every HTTP response.
package models
