// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package bus

import (
	"context"
	"sync"

	"github.com/showtimenow/showtimenow/internal/logging"
	"github.com/showtimenow/showtimenow/internal/metrics"
	"github.com/showtimenow/showtimenow/internal/personalize"
)

// Tracker consumes the selection stream and retains the newest selection,
// recording each one in the logs and the selection counters.
type Tracker struct {
	mu     sync.RWMutex
	latest MemberSelected
	seen   bool
}

// Track subscribes the returned tracker to this bus. Tracking stops when ctx
// is cancelled or the bus closes.
func (b *Bus) Track(ctx context.Context) (*Tracker, error) {
	events, err := b.SubscribeMemberSelected(ctx)
	if err != nil {
		return nil, err
	}

	t := &Tracker{}
	go t.consume(events)
	return t, nil
}

func (t *Tracker) consume(events <-chan MemberSelected) {
	for event := range events {
		band := personalize.AgeGroupForAge(event.Profile.Age)
		metrics.MemberSelections.WithLabelValues(string(band)).Inc()

		logging.Info().
			Uint64("seq", event.Seq).
			Str("member_id", event.Profile.ID).
			Str("age_group", string(band)).
			Time("selected_at", event.SelectedAt).
			Msg("Family member selected")

		t.mu.Lock()
		t.latest = event
		t.seen = true
		t.mu.Unlock()
	}
}

// Latest returns the newest selection seen so far. The second return is
// false until the first selection arrives.
func (t *Tracker) Latest() (MemberSelected, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.latest, t.seen
}
