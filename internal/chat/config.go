// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package chat

import (
	"fmt"
	"time"
)

// Config configures the assistant.
type Config struct {
	// Enabled turns LLM calls on. With it off, or without an API key, every
	// reply comes from the keyword fallback.
	Enabled     bool          `koanf:"enabled"`
	APIKey      string        `koanf:"api_key"`
	Model       string        `koanf:"model"`
	Temperature float32       `koanf:"temperature"`
	MaxTokens   int           `koanf:"max_tokens"`
	BaseURL     string        `koanf:"base_url"`
	Timeout     time.Duration `koanf:"timeout"`

	// Per-user token bucket for LLM calls.
	RatePerMinute float64 `koanf:"rate_per_minute"`
	Burst         int     `koanf:"burst"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker around the LLM.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		Model:         "gpt-4o",
		Temperature:   0.7,
		MaxTokens:     500,
		Timeout:       30 * time.Second,
		RatePerMinute: 10,
		Burst:         5,
		Breaker: BreakerConfig{
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      2 * time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
	}
}

// LLMEnabled reports whether replies should be requested from the model.
func (c *Config) LLMEnabled() bool {
	return c.Enabled && c.APIKey != ""
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("chat.model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("chat.temperature must be between 0 and 2 (got %v)", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("chat.max_tokens must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("chat.timeout must be positive")
	}
	if c.RatePerMinute <= 0 || c.Burst <= 0 {
		return fmt.Errorf("chat.rate_per_minute and chat.burst must be positive")
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("chat.breaker.failure_ratio must be in (0, 1]")
	}
	return nil
}
