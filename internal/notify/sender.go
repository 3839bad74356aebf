// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package notify delivers booking confirmation emails.
//
// Delivery runs through named senders (automation, smtp, simulated) behind a
// common Sender interface. The Manager tries the configured primary sender
// once and the fallback once; a total failure is downgraded to a warning
// status so a confirmed booking is never blocked on email delivery.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Sender delivers one confirmation email.
type Sender interface {
	// Name returns the sender identifier (automation, smtp, simulated).
	Name() string

	// Send attempts delivery. Delivery failures are reported in the result,
	// not as an error; a non-nil error means the attempt could not be made
	// at all.
	Send(ctx context.Context, params *SendParams) (*SendResult, error)
}

// SendParams carries everything a sender needs for one delivery.
type SendParams struct {
	// To is the recipient email address.
	To string

	// Subject is the email subject line.
	Subject string

	// BodyHTML is the HTML confirmation body.
	BodyHTML string

	// BodyText is the plaintext alternative. Optional.
	BodyText string
}

// SendResult contains the outcome of a delivery attempt.
type SendResult struct {
	// Success indicates if delivery was successful.
	Success bool

	// Recipient is the recipient email address.
	Recipient string

	// DeliveredAt is when delivery succeeded.
	DeliveredAt *time.Time

	// ErrorMessage contains error details if failed.
	ErrorMessage string

	// ErrorCode is a machine-readable error code.
	ErrorCode string

	// IsTransient indicates if the error is transient (can be retried).
	IsTransient bool

	// ResponseCode is the HTTP response code for HTTP-based senders.
	ResponseCode int
}

// Error codes for delivery failures.
const (
	ErrorCodeInvalidConfig    = "INVALID_CONFIG"
	ErrorCodeInvalidRecipient = "INVALID_RECIPIENT"
	ErrorCodeConnectionFailed = "CONNECTION_FAILED"
	ErrorCodeAuthFailed       = "AUTH_FAILED"
	ErrorCodeServerError      = "SERVER_ERROR"
	ErrorCodeTimeout          = "TIMEOUT"
	ErrorCodeUnknown          = "UNKNOWN"
)

// ValidateEmail validates an email address format.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email address is required")
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid email address format: %s", email)
	}
	if !strings.Contains(parts[1], ".") {
		return fmt.Errorf("invalid email domain: %s", parts[1])
	}
	return nil
}

// classifySendError classifies an error into an error code.
func classifySendError(err error) string {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "authentication"), strings.Contains(errStr, "auth"):
		return ErrorCodeAuthFailed
	case strings.Contains(errStr, "connection"), strings.Contains(errStr, "connect"):
		return ErrorCodeConnectionFailed
	case strings.Contains(errStr, "timeout"), strings.Contains(errStr, "deadline"):
		return ErrorCodeTimeout
	case strings.Contains(errStr, "status 5"):
		return ErrorCodeServerError
	default:
		return ErrorCodeUnknown
	}
}

// isTransientError returns true if the error code can be retried.
func isTransientError(code string) bool {
	switch code {
	case ErrorCodeConnectionFailed, ErrorCodeTimeout, ErrorCodeServerError:
		return true
	default:
		return false
	}
}

// failedResult builds a failure result for params from err.
func failedResult(params *SendParams, err error) *SendResult {
	code := classifySendError(err)
	return &SendResult{
		Recipient:    params.To,
		ErrorMessage: err.Error(),
		ErrorCode:    code,
		IsTransient:  isTransientError(code),
	}
}
