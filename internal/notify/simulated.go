// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package notify

import (
	"context"
	"time"

	"github.com/showtimenow/showtimenow/internal/logging"
)

// SimulatedSender pretends to deliver email after a fixed delay. It backs
// the demo deployment and serves as the last-resort fallback: it cannot
// fail, so the booking flow always has a working sender.
type SimulatedSender struct {
	delay time.Duration
}

// NewSimulatedSender creates a simulated sender with the given delay.
func NewSimulatedSender(delay time.Duration) *SimulatedSender {
	return &SimulatedSender{delay: delay}
}

// Name returns the sender identifier.
func (s *SimulatedSender) Name() string { return "simulated" }

// Send waits the configured delay and reports success.
func (s *SimulatedSender) Send(ctx context.Context, params *SendParams) (*SendResult, error) {
	if err := ValidateEmail(params.To); err != nil {
		return &SendResult{
			Recipient:    params.To,
			ErrorMessage: err.Error(),
			ErrorCode:    ErrorCodeInvalidRecipient,
		}, nil
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return failedResult(params, ctx.Err()), nil
		}
	}

	logging.Info().
		Str("to", params.To).
		Str("subject", params.Subject).
		Msg("Simulated email delivery")

	now := time.Now()
	return &SendResult{
		Success:     true,
		Recipient:   params.To,
		DeliveredAt: &now,
	}, nil
}
