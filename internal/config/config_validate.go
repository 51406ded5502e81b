// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/tomtom215/careercanvas/internal/auth"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateChat(); err != nil {
		return err
	}
	if c.Authz.CacheTTL < 0 {
		return fmt.Errorf("authz.cache_ttl must not be negative")
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.timeout and server.shutdown_timeout must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	authCfg := c.Security.AuthConfig()
	if err := authCfg.Validate(); err != nil {
		return err
	}
	if c.Security.AuthMode == auth.ModeJWT && containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value, set a real secret")
	}
	if err := c.validateCORS(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateAdminCredentials()
}

// validateCORS rejects wildcard origins in production, where every route
// accepts credentials.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	return slices.Contains(c.Security.CORSOrigins, "*")
}

// ShouldWarnAboutCORS returns true if the CORS configuration should be
// logged as a concern at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	limits := map[string]int{
		"RATE_LIMIT_REQUESTS":       c.Security.RateLimitReqs,
		"AUTH_RATE_LIMIT_REQUESTS":  c.Security.AuthRateLimitReqs,
		"WRITE_RATE_LIMIT_REQUESTS": c.Security.WriteRateLimitReqs,
	}
	for name, v := range limits {
		if v < minRateLimitRequests || v > maxRateLimitRequests {
			return fmt.Errorf("%s must be between %d and %d", name, minRateLimitRequests, maxRateLimitRequests)
		}
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateAdminCredentials checks the optional bootstrap admin account.
func (c *Config) validateAdminCredentials() error {
	user, pass := c.Security.AdminUsername, c.Security.AdminPassword
	if user == "" && pass == "" {
		return nil
	}
	if user == "" || pass == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}
	if len(pass) < auth.MinPasswordLength {
		return fmt.Errorf("ADMIN_PASSWORD must be at least %d characters", auth.MinPasswordLength)
	}
	if c.IsProduction() {
		if containsPlaceholder(pass) {
			return fmt.Errorf("ADMIN_PASSWORD contains a placeholder value, set a real password")
		}
		if strings.Contains(strings.ToLower(pass), strings.ToLower(user)) {
			return fmt.Errorf("ADMIN_PASSWORD must not contain the username")
		}
	}
	return nil
}

// validateChat validates the assistant settings and the optional base URL.
func (c *Config) validateChat() error {
	if err := c.Chat.Validate(); err != nil {
		return err
	}
	if c.Chat.BaseURL != "" {
		if err := validateHTTPURL(c.Chat.BaseURL, "OPENAI_BASE_URL"); err != nil {
			return fmt.Errorf("OPENAI_BASE_URL is invalid: %w", err)
		}
	}
	return nil
}

// validateHTTPURL checks the scheme and host of an API base URL. A path is
// allowed because OpenAI-compatible gateways are usually mounted under one,
// such as /v1.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == EnvProduction || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == EnvDevelopment || env == "dev"
}

// placeholderPatterns are values people leave in example config files.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"YOUR_PASSWORD",
	"PLACEHOLDER",
	"EXAMPLE",
}

func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
