// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Contentstack ContentstackConfig `koanf:"contentstack"`
	Personalize  PersonalizeConfig  `koanf:"personalize"`
	Notify       NotifyConfig       `koanf:"notify"`
	Server       ServerConfig       `koanf:"server"`
	Security     SecurityConfig     `koanf:"security"`
	Logging      LoggingConfig      `koanf:"logging"`
}

// ContentstackConfig holds the content repository connection settings.
// When APIKey or DeliveryToken is empty the content client runs unconfigured:
// every fetch short-circuits to a nil entry and the personalization pipeline
// serves its static fallback.
type ContentstackConfig struct {
	BaseURL       string        `koanf:"base_url"`
	APIKey        string        `koanf:"api_key"`
	DeliveryToken string        `koanf:"delivery_token"`
	Environment   string        `koanf:"environment"`
	Timeout       time.Duration `koanf:"timeout"`

	// Content type and entry identifiers for the fixed site content.
	MoviesContentType   string `koanf:"movies_content_type"`
	MoviesEntryID       string `koanf:"movies_entry_id"`
	TheatresContentType string `koanf:"theatres_content_type"`
	TheatresEntryID     string `koanf:"theatres_entry_id"`
	HeaderContentType   string `koanf:"header_content_type"`
	HeaderEntryID       string `koanf:"header_entry_id"`
	FooterContentType   string `koanf:"footer_content_type"`
	FooterEntryID       string `koanf:"footer_entry_id"`
}

// Configured reports whether the client credentials are present.
func (c *ContentstackConfig) Configured() bool {
	return c.APIKey != "" && c.DeliveryToken != ""
}

// PersonalizeConfig maps each audience age band to the entry and variant ids
// of the age-banded movie content.
type PersonalizeConfig struct {
	ChildEntryID   string `koanf:"child_entry_id"`
	ChildVariantID string `koanf:"child_variant_id"`
	TeenEntryID    string `koanf:"teen_entry_id"`
	TeenVariantID  string `koanf:"teen_variant_id"`
	AdultEntryID   string `koanf:"adult_entry_id"`
	AdultVariantID string `koanf:"adult_variant_id"`
}

// NotifyConfig holds the booking-confirmation notification settings.
// Primary and Fallback select senders by name: automation, smtp, simulated.
type NotifyConfig struct {
	Primary  string        `koanf:"primary"`
	Fallback string        `koanf:"fallback"`
	Timeout  time.Duration `koanf:"timeout"`

	// AutomationURL is the third-party automation endpoint for the primary
	// email path.
	AutomationURL string `koanf:"automation_url"`

	// SimulatedDelay is the artificial latency of the simulated sender.
	SimulatedDelay time.Duration `koanf:"simulated_delay"`

	// SMTP settings for the smtp sender.
	SMTPHost     string `koanf:"smtp_host"`
	SMTPPort     int    `koanf:"smtp_port"`
	SMTPFrom     string `koanf:"smtp_from"`
	SMTPFromName string `koanf:"smtp_from_name"`
	SMTPUser     string `koanf:"smtp_user"`
	SMTPPassword string `koanf:"smtp_password"`
	SMTPUseTLS   bool   `koanf:"smtp_use_tls"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for malformed values. Missing CMS
// credentials are NOT an error: the service degrades to fallback content.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Contentstack.BaseURL != "" {
		u, err := url.Parse(c.Contentstack.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid contentstack base URL: %q", c.Contentstack.BaseURL)
		}
	}
	if c.Notify.AutomationURL != "" {
		u, err := url.Parse(c.Notify.AutomationURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid automation URL: %q", c.Notify.AutomationURL)
		}
	}
	if err := validSenderName(c.Notify.Primary); err != nil {
		return fmt.Errorf("notify.primary: %w", err)
	}
	if err := validSenderName(c.Notify.Fallback); err != nil {
		return fmt.Errorf("notify.fallback: %w", err)
	}
	if c.Security.RateLimitReqs < 0 {
		return fmt.Errorf("rate limit requests must not be negative, got %d", c.Security.RateLimitReqs)
	}
	return nil
}

func validSenderName(name string) error {
	switch name {
	case "automation", "smtp", "simulated":
		return nil
	}
	return fmt.Errorf("unknown sender %q (want automation, smtp or simulated)", name)
}
