// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AutomationSender delivers email through the external automation endpoint.
// The endpoint takes the recipient, subject and body as query parameters and
// performs the actual delivery on its side.
type AutomationSender struct {
	endpoint   string
	httpClient *http.Client
}

// NewAutomationSender creates an automation sender for the given endpoint.
func NewAutomationSender(endpoint string, timeout time.Duration) *AutomationSender {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AutomationSender{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the sender identifier.
func (s *AutomationSender) Name() string { return "automation" }

// Send posts the email to the automation endpoint.
func (s *AutomationSender) Send(ctx context.Context, params *SendParams) (*SendResult, error) {
	if s.endpoint == "" {
		return &SendResult{
			Recipient:    params.To,
			ErrorMessage: "automation endpoint not configured",
			ErrorCode:    ErrorCodeInvalidConfig,
		}, nil
	}
	if err := ValidateEmail(params.To); err != nil {
		return &SendResult{
			Recipient:    params.To,
			ErrorMessage: err.Error(),
			ErrorCode:    ErrorCodeInvalidRecipient,
		}, nil
	}

	query := url.Values{}
	query.Set("to", params.To)
	query.Set("subject", params.Subject)
	query.Set("body", params.BodyHTML)

	endpoint := s.endpoint
	if strings.Contains(endpoint, "?") {
		endpoint += "&" + query.Encode()
	} else {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return failedResult(params, fmt.Errorf("request failed: %w", err)), nil
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck // Best effort cleanup

	result := &SendResult{
		Recipient:    params.To,
		ResponseCode: resp.StatusCode,
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.ErrorMessage = fmt.Sprintf("automation endpoint returned status %d", resp.StatusCode)
		if resp.StatusCode >= 500 {
			result.ErrorCode = ErrorCodeServerError
			result.IsTransient = true
		} else {
			result.ErrorCode = ErrorCodeUnknown
		}
		return result, nil
	}

	now := time.Now()
	result.Success = true
	result.DeliveredAt = &now
	return result, nil
}
