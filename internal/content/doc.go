// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package content implements the client for the headless content repository.
//
// The Client interface is the single boundary to the remote CMS. Its
// contract is deliberately forgiving: a misconfigured client (missing
// credentials) or a failed fetch yields a nil entry, never a panic, and
// errors never propagate past the personalization pipeline into a render
// path.
//
// Two implementations exist:
//
//   - HTTPClient: talks to the CMS delivery API over HTTPS, decoding
//     responses into the typed schema in internal/models.
//   - BreakerClient: wraps any Client with a circuit breaker so a
//     misbehaving CMS cannot consume every request's latency budget.
package content
