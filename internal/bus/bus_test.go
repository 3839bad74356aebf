// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package bus

import (
	"context"
	"testing"
	"time"

	"github.com/showtimenow/showtimenow/internal/models"
)

func receive(t *testing.T, events <-chan MemberSelected) MemberSelected {
	t.Helper()
	select {
	case event, ok := <-events:
		if !ok {
			t.Fatal("event channel closed")
		}
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return MemberSelected{}
}

func TestPublishSubscribe(t *testing.T) {
	b := New()
	defer func() { _ = b.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := b.SubscribeMemberSelected(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	profile := models.FamilyMemberProfile{ID: "member-2", Name: "Sarah", Age: 15}
	seq, err := b.PublishMemberSelected(profile)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if seq != 1 {
		t.Errorf("first seq = %d, want 1", seq)
	}

	event := receive(t, events)
	if event.Seq != seq || event.Profile.Name != "Sarah" {
		t.Errorf("event = %+v", event)
	}
	if event.SelectedAt.IsZero() {
		t.Error("SelectedAt not set")
	}
}

func TestSequenceIncreases(t *testing.T) {
	b := New()
	defer func() { _ = b.Close() }()

	profile := models.FamilyMemberProfile{ID: "member-1", Name: "John", Age: 35}

	first, err := b.PublishMemberSelected(profile)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	second, err := b.PublishMemberSelected(profile)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if second != first+1 {
		t.Errorf("seq did not increase: %d then %d", first, second)
	}
	if b.NextSeq() != second+1 {
		t.Errorf("NextSeq = %d, want %d", b.NextSeq(), second+1)
	}
}

func TestSubscriberSeesOrderedEvents(t *testing.T) {
	b := New()
	defer func() { _ = b.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := b.SubscribeMemberSelected(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	for _, name := range []string{"John", "Sarah", "Mike"} {
		if _, err := b.PublishMemberSelected(models.FamilyMemberProfile{ID: name, Name: name}); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	var last uint64
	for i := 0; i < 3; i++ {
		event := receive(t, events)
		if event.Seq <= last {
			t.Errorf("event %d out of order: seq %d after %d", i, event.Seq, last)
		}
		last = event.Seq
	}
}

func TestSubscriptionClosesWithContext(t *testing.T) {
	b := New()
	defer func() { _ = b.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	events, err := b.SubscribeMemberSelected(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected closed channel after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after context cancel")
	}
}

func TestTrackerRetainsNewest(t *testing.T) {
	b := New()
	defer func() { _ = b.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracker, err := b.Track(ctx)
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if _, ok := tracker.Latest(); ok {
		t.Error("tracker reports a selection before any was published")
	}

	if _, err := b.PublishMemberSelected(models.FamilyMemberProfile{ID: "member-1", Name: "John", Age: 35}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	second, err := b.PublishMemberSelected(models.FamilyMemberProfile{ID: "member-2", Name: "Sarah", Age: 15})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if latest, ok := tracker.Latest(); ok && latest.Seq == second {
			if latest.Profile.ID != "member-2" {
				t.Errorf("latest profile = %q, want member-2", latest.Profile.ID)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("tracker never saw the newest selection")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
