// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/authz"
	"github.com/tomtom215/careercanvas/internal/cache"
	"github.com/tomtom215/careercanvas/internal/catalog"
	"github.com/tomtom215/careercanvas/internal/chat"
	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/recommend"
	"github.com/tomtom215/careercanvas/internal/store"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   LoggingConfig    `koanf:"logging"`
	Storage   store.Config     `koanf:"storage"`
	Cache     cache.Config     `koanf:"cache"`
	Security  SecurityConfig   `koanf:"security"`
	Chat      chat.Config      `koanf:"chat"`
	Catalog   catalog.Config   `koanf:"catalog"`
	Authz     authz.Config     `koanf:"authz"`
	Recommend recommend.Config `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ToLogging converts to the logging package's configuration.
func (l LoggingConfig) ToLogging() logging.Config {
	return logging.Config{
		Level:     l.Level,
		Format:    l.Format,
		Caller:    l.Caller,
		Timestamp: true,
	}
}

// SecurityConfig holds authentication, CORS and rate limit settings.
type SecurityConfig struct {
	AuthMode         string        `koanf:"auth_mode"`
	JWTSecret        string        `koanf:"jwt_secret"`
	SessionTimeout   time.Duration `koanf:"session_timeout"`
	SessionStore     string        `koanf:"session_store"`
	SessionStorePath string        `koanf:"session_store_path"`
	CookieSecure     bool          `koanf:"cookie_secure"`

	// AdminUsername and AdminPassword create an admin account at startup
	// when both are set and the username is free.
	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	CORSOrigins []string `koanf:"cors_origins"`

	RateLimitReqs      int           `koanf:"rate_limit_reqs"`
	AuthRateLimitReqs  int           `koanf:"auth_rate_limit_reqs"`
	WriteRateLimitReqs int           `koanf:"write_rate_limit_reqs"`
	RateLimitWindow    time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled  bool          `koanf:"rate_limit_disabled"`
}

// AuthConfig converts to the auth package's configuration.
func (s SecurityConfig) AuthConfig() auth.Config {
	return auth.Config{
		Mode:           s.AuthMode,
		JWTSecret:      s.JWTSecret,
		SessionTimeout: s.SessionTimeout,
		SessionStore:   s.SessionStore,
		SessionPath:    s.SessionStorePath,
		CookieSecure:   s.CookieSecure,
	}
}

// defaultConfig returns the built-in defaults. The config file and the
// environment override them.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     EnvDevelopment,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Storage: store.Config{
			Backend:    store.BackendMemory,
			BadgerPath: "/data/careercanvas",
		},
		Cache: cache.Config{
			Backend:         cache.BackendMemory,
			TTL:             5 * time.Minute,
			CleanupInterval: cache.DefaultCleanupInterval,
			KeyPrefix:       cache.DefaultKeyPrefix,
		},
		Security: SecurityConfig{
			AuthMode:           auth.ModeSession,
			SessionTimeout:     24 * time.Hour,
			SessionStore:       auth.SessionStoreMemory,
			SessionStorePath:   "/data/sessions",
			CORSOrigins:        []string{"*"},
			RateLimitReqs:      100,
			AuthRateLimitReqs:  5,
			WriteRateLimitReqs: 30,
			RateLimitWindow:    time.Minute,
		},
		Chat: chat.DefaultConfig(),
		Catalog: catalog.Config{
			Seed:             1,
			IncludeGenerated: true,
		},
		Authz: authz.Config{
			CacheTTL: time.Minute,
		},
		Recommend: recommend.DefaultConfig(),
	}
}
