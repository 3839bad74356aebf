// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/showtimenow/config.yaml",
	"/etc/showtimenow/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Contentstack: ContentstackConfig{
			BaseURL:             "https://cdn.contentstack.io",
			APIKey:              "",
			DeliveryToken:       "",
			Environment:         "production",
			Timeout:             30 * time.Second,
			MoviesContentType:   "movies_types",
			MoviesEntryID:       "bltbc9d353f08052686",
			TheatresContentType: "theatres",
			TheatresEntryID:     "blte30aa41004b9f283",
			HeaderContentType:   "menus",
			HeaderEntryID:       "",
			FooterContentType:   "footer",
			FooterEntryID:       "",
		},
		Personalize: PersonalizeConfig{
			// All bands point at the same base entry; the variant id selects
			// the age-banded movie subset.
			ChildEntryID:   "bltbc9d353f08052686",
			ChildVariantID: "csa80cbe7b155a6117",
			TeenEntryID:    "bltbc9d353f08052686",
			TeenVariantID:  "cs1b972cd08e51b6d2",
			AdultEntryID:   "bltbc9d353f08052686",
			AdultVariantID: "cs88979cadf5706241",
		},
		Notify: NotifyConfig{
			Primary:        "automation",
			Fallback:       "simulated",
			Timeout:        30 * time.Second,
			AutomationURL:  "",
			SimulatedDelay: time.Second,
			SMTPPort:       587,
			SMTPFromName:   "ShowTimeNow",
			SMTPUseTLS:     true,
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        3900,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration with layered sources: defaults, then an optional
// YAML config file, then environment variables (highest priority).
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as
// comma-separated slices when they arrive via environment variables.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields. Env vars come in as strings, but the config expects
// slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML file or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unknown variables map to the empty string and are ignored.
//
// Examples:
//   - CONTENTSTACK_API_KEY -> contentstack.api_key
//   - CONTENTSTACK_CHILD_MOVIES_VARIANT_ID -> personalize.child_variant_id
//   - NOTIFY_AUTOMATION_URL -> notify.automation_url
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Content repository
		"contentstack_base_url":       "contentstack.base_url",
		"contentstack_api_key":        "contentstack.api_key",
		"contentstack_delivery_token": "contentstack.delivery_token",
		"contentstack_environment":    "contentstack.environment",
		"contentstack_timeout":        "contentstack.timeout",
		"contentstack_movies_entry_id":   "contentstack.movies_entry_id",
		"contentstack_theatres_entry_id": "contentstack.theatres_entry_id",
		"contentstack_header_entry_id":   "contentstack.header_entry_id",
		"contentstack_footer_entry_id":   "contentstack.footer_entry_id",

		// Personalization entry/variant ids
		"contentstack_child_movies_entry_id":   "personalize.child_entry_id",
		"contentstack_child_movies_variant_id": "personalize.child_variant_id",
		"contentstack_teen_movies_entry_id":    "personalize.teen_entry_id",
		"contentstack_teen_movies_variant_id":  "personalize.teen_variant_id",
		"contentstack_adult_movies_entry_id":   "personalize.adult_entry_id",
		"contentstack_adult_movies_variant_id": "personalize.adult_variant_id",

		// Notification
		"notify_primary":         "notify.primary",
		"notify_fallback":        "notify.fallback",
		"notify_timeout":         "notify.timeout",
		"notify_automation_url":  "notify.automation_url",
		"notify_simulated_delay": "notify.simulated_delay",
		"smtp_host":              "notify.smtp_host",
		"smtp_port":              "notify.smtp_port",
		"smtp_from":              "notify.smtp_from",
		"smtp_from_name":         "notify.smtp_from_name",
		"smtp_user":              "notify.smtp_user",
		"smtp_password":          "notify.smtp_password",
		"smtp_use_tls":           "notify.smtp_use_tls",

		// Server
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// Security
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",
		"cors_origins":        "security.cors_origins",

		// Logging
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if path, ok := envMappings[key]; ok {
		return path
	}

	// Ignore unknown environment variables to avoid polluting the config tree.
	return ""
}
