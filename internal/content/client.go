// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/showtimenow/showtimenow/internal/config"
	"github.com/showtimenow/showtimenow/internal/logging"
	"github.com/showtimenow/showtimenow/internal/metrics"
	"github.com/showtimenow/showtimenow/internal/models"
)

// FetchOptions carries optional fetch parameters.
type FetchOptions struct {
	// IncludeRefs lists referenced fields to resolve inline.
	IncludeRefs []string

	// VariantID selects a content variant. Sent as the x-cs-variant-uid
	// header. Empty means the base entry.
	VariantID string
}

// Client fetches entries from the content repository.
//
// A nil entry with a nil error means the client is unconfigured or the
// entry does not exist; callers must treat it as "no content", not as a
// failure to be retried.
type Client interface {
	FetchEntry(ctx context.Context, contentTypeID, entryID string, opts *FetchOptions) (*models.Entry, error)
}

// HTTPClient talks to the CMS delivery API.
type HTTPClient struct {
	baseURL     string
	apiKey      string
	accessToken string
	environment string
	configured  bool
	httpClient  *http.Client
}

// Compile-time interface check.
var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a content client from configuration.
//
// Missing credentials are detected here, once: the client still constructs,
// but every FetchEntry call short-circuits to a nil entry. This keeps the
// whole site renderable (on fallback content) without a configured CMS.
func NewHTTPClient(cfg *config.ContentstackConfig) *HTTPClient {
	configured := cfg.Configured()
	if !configured {
		logging.Warn().Msg("Content repository credentials missing - all fetches will return no content")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPClient{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		accessToken: cfg.DeliveryToken,
		environment: cfg.Environment,
		configured:  configured,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// entryEnvelope is the delivery API response wrapper.
type entryEnvelope struct {
	Entry *models.Entry `json:"entry"`
}

// FetchEntry retrieves one entry, optionally a specific variant of it.
func (c *HTTPClient) FetchEntry(ctx context.Context, contentTypeID, entryID string, opts *FetchOptions) (*models.Entry, error) {
	if !c.configured {
		return nil, nil
	}
	if contentTypeID == "" || entryID == "" {
		return nil, fmt.Errorf("content type and entry id are required")
	}

	variantLabel := "base"
	if opts != nil && opts.VariantID != "" {
		variantLabel = "variant"
	}

	start := time.Now()
	entry, err := c.doFetch(ctx, contentTypeID, entryID, opts)
	metrics.ContentFetchDuration.WithLabelValues(contentTypeID, variantLabel).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ContentFetchErrors.WithLabelValues(contentTypeID, classifyFetchError(err)).Inc()
		logging.Error().
			Err(err).
			Str("content_type", contentTypeID).
			Str("entry_id", entryID).
			Msg("Content fetch failed")
		return nil, err
	}

	return entry, nil
}

func (c *HTTPClient) doFetch(ctx context.Context, contentTypeID, entryID string, opts *FetchOptions) (*models.Entry, error) {
	endpoint := fmt.Sprintf("%s/v3/content_types/%s/entries/%s",
		c.baseURL, url.PathEscape(contentTypeID), url.PathEscape(entryID))

	params := url.Values{}
	if c.environment != "" {
		params.Set("environment", c.environment)
	}
	if opts != nil {
		for _, ref := range opts.IncludeRefs {
			params.Add("include[]", ref)
		}
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("api_key", c.apiKey)
	req.Header.Set("access_token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	if opts != nil && opts.VariantID != "" {
		req.Header.Set("x-cs-variant-uid", opts.VariantID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck // Best effort cleanup

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:errcheck // body used for diagnostics only
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope entryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w", err)
	}

	return envelope.Entry, nil
}

// classifyFetchError buckets an error for metrics.
func classifyFetchError(err error) string {
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "context deadline exceeded"), strings.Contains(errStr, "timeout"):
		return "timeout"
	case strings.Contains(errStr, "connection"), strings.Contains(errStr, "no such host"):
		return "connection"
	case strings.Contains(errStr, "unexpected status"):
		return "http_status"
	case strings.Contains(errStr, "decode"):
		return "decode"
	default:
		return "unknown"
	}
}
