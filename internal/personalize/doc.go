// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package personalize resolves the movie list for a family member profile.
//
// Resolution runs a fixed three-step chain: fetch the audience variant of
// the movies entry, then the base entry filtered by profile, then a static
// fallback list. The first step that yields movies wins; failures in one
// step only advance the chain, they never surface to callers.
package personalize
