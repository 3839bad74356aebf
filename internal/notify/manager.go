// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package notify

import (
	"context"

	"github.com/showtimenow/showtimenow/internal/config"
	"github.com/showtimenow/showtimenow/internal/logging"
	"github.com/showtimenow/showtimenow/internal/metrics"
)

// User-facing delivery statuses carried on the booking response.
const (
	StatusSent         = "Email sent successfully!"
	StatusSentFallback = "Email sent via alternative service!"
	StatusUnavailable  = "Email service temporarily unavailable, but booking confirmed!"
)

// Outcome is the result of running the delivery chain.
type Outcome struct {
	// Delivered is true when any sender succeeded.
	Delivered bool

	// Sender names the sender that delivered, when Delivered.
	Sender string

	// Status is the user-facing delivery status string.
	Status string
}

// Manager runs the two-step delivery chain: the primary sender once, then
// the fallback sender once. It never returns an error; a full chain failure
// surfaces as a warning status on an otherwise confirmed booking.
type Manager struct {
	primary  Sender
	fallback Sender
}

// NewManager builds the delivery chain from configuration. Unknown sender
// names fall back to the simulated sender so the chain is always runnable.
func NewManager(cfg *config.NotifyConfig) *Manager {
	return &Manager{
		primary:  buildSender(cfg, cfg.Primary),
		fallback: buildSender(cfg, cfg.Fallback),
	}
}

// NewManagerWithSenders builds a manager over explicit senders.
func NewManagerWithSenders(primary, fallback Sender) *Manager {
	return &Manager{primary: primary, fallback: fallback}
}

func buildSender(cfg *config.NotifyConfig, name string) Sender {
	switch name {
	case "automation":
		return NewAutomationSender(cfg.AutomationURL, cfg.Timeout)
	case "smtp":
		return NewSMTPSender(cfg)
	default:
		return NewSimulatedSender(cfg.SimulatedDelay)
	}
}

// Notify runs the delivery chain for one confirmation email.
func (m *Manager) Notify(ctx context.Context, params *SendParams) Outcome {
	if m.attempt(ctx, m.primary, params) {
		return Outcome{Delivered: true, Sender: m.primary.Name(), Status: StatusSent}
	}

	if m.fallback != nil && m.fallback.Name() != m.primary.Name() {
		if m.attempt(ctx, m.fallback, params) {
			return Outcome{Delivered: true, Sender: m.fallback.Name(), Status: StatusSentFallback}
		}
	}

	logging.Warn().
		Str("to", params.To).
		Msg("All notification senders failed, booking remains confirmed")
	return Outcome{Status: StatusUnavailable}
}

func (m *Manager) attempt(ctx context.Context, sender Sender, params *SendParams) bool {
	if sender == nil {
		return false
	}

	result, err := sender.Send(ctx, params)
	if err != nil {
		metrics.NotificationAttempts.WithLabelValues(sender.Name(), "failure").Inc()
		logging.Error().
			Err(err).
			Str("sender", sender.Name()).
			Msg("Notification attempt could not be made")
		return false
	}
	if !result.Success {
		metrics.NotificationAttempts.WithLabelValues(sender.Name(), "failure").Inc()
		logging.Warn().
			Str("sender", sender.Name()).
			Str("error_code", result.ErrorCode).
			Str("error", result.ErrorMessage).
			Bool("transient", result.IsTransient).
			Msg("Notification delivery failed")
		return false
	}

	metrics.NotificationAttempts.WithLabelValues(sender.Name(), "success").Inc()
	logging.Info().
		Str("sender", sender.Name()).
		Str("to", result.Recipient).
		Msg("Notification delivered")
	return true
}
