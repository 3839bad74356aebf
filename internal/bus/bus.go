// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package bus broadcasts family-member selections to interested consumers
// over an in-process publish/subscribe channel.
//
// Each publication carries a monotonic sequence number. Subscribers receive
// selections in order and drop any event older than the newest one they
// have seen, so a slow resolution can never overwrite a newer selection.
package bus

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/showtimenow/showtimenow/internal/logging"
	"github.com/showtimenow/showtimenow/internal/models"
)

// TopicMemberSelected is the member selection topic.
const TopicMemberSelected = "member.selected"

// MemberSelected is published whenever a family member profile is selected.
type MemberSelected struct {
	// Seq orders selections; higher values are newer.
	Seq uint64 `json:"seq"`

	Profile models.FamilyMemberProfile `json:"profile"`

	SelectedAt time.Time `json:"selected_at"`
}

// Bus is the in-process selection broadcast channel.
type Bus struct {
	pubsub *gochannel.GoChannel
	seq    atomic.Uint64
}

// New creates a bus backed by an in-process pub/sub channel.
func New() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 16,
		}, newLoggerAdapter()),
	}
}

// NextSeq returns the sequence number the next publication will carry.
func (b *Bus) NextSeq() uint64 {
	return b.seq.Load() + 1
}

// PublishMemberSelected broadcasts a selection and returns its sequence.
func (b *Bus) PublishMemberSelected(profile models.FamilyMemberProfile) (uint64, error) {
	event := MemberSelected{
		Seq:        b.seq.Add(1),
		Profile:    profile,
		SelectedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal selection event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubsub.Publish(TopicMemberSelected, msg); err != nil {
		return 0, fmt.Errorf("failed to publish selection event: %w", err)
	}
	return event.Seq, nil
}

// SubscribeMemberSelected returns a channel of selections. Events older than
// the newest already delivered on this subscription are dropped. The channel
// closes when ctx is cancelled or the bus is closed.
func (b *Bus) SubscribeMemberSelected(ctx context.Context) (<-chan MemberSelected, error) {
	messages, err := b.pubsub.Subscribe(ctx, TopicMemberSelected)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan MemberSelected, 16)
	go func() {
		defer close(out)
		var newest uint64
		for msg := range messages {
			var event MemberSelected
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				logging.Warn().Err(err).Msg("Dropping undecodable selection event")
				msg.Ack()
				continue
			}
			msg.Ack()

			if event.Seq <= newest {
				logging.Debug().
					Uint64("seq", event.Seq).
					Uint64("newest", newest).
					Msg("Dropping stale selection event")
				continue
			}
			newest = event.Seq

			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close shuts the bus down; pending subscriptions see their channels close.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
