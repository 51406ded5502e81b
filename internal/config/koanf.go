// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/careercanvas/config.yaml",
	"/etc/careercanvas/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load reads configuration in layers: built-in defaults, then an optional
// YAML file, then environment variables. The result is validated.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

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

// findConfigFile returns CONFIG_PATH if it exists, else the first default
// path that exists, else "".
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

// sliceConfigPaths are split on commas when they arrive as strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated env values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		var trimmed []string
		for _, p := range strings.Split(strVal, ",") {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config
// paths. Unlisted variables are ignored.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"port":             "server.port",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Storage
	"storage_backend": "storage.backend",
	"badger_path":     "storage.badger_path",
	"database_url":    "storage.postgres_url",

	// Snapshot cache
	"cache_backend":          "cache.backend",
	"cache_ttl":              "cache.ttl",
	"cache_cleanup_interval": "cache.cleanup_interval",
	"redis_url":              "cache.redis_url",
	"cache_key_prefix":       "cache.key_prefix",

	// Security
	"auth_mode":                   "security.auth_mode",
	"jwt_secret":                  "security.jwt_secret",
	"session_timeout":             "security.session_timeout",
	"session_store":               "security.session_store",
	"session_store_path":          "security.session_store_path",
	"cookie_secure":               "security.cookie_secure",
	"admin_username":              "security.admin_username",
	"admin_password":              "security.admin_password",
	"cors_origins":                "security.cors_origins",
	"rate_limit_requests":         "security.rate_limit_reqs",
	"auth_rate_limit_requests":    "security.auth_rate_limit_reqs",
	"write_rate_limit_requests":   "security.write_rate_limit_reqs",
	"rate_limit_window":           "security.rate_limit_window",
	"disable_rate_limit":          "security.rate_limit_disabled",

	// Chat
	"chat_enabled":         "chat.enabled",
	"openai_api_key":       "chat.api_key",
	"openai_model":         "chat.model",
	"openai_base_url":      "chat.base_url",
	"chat_temperature":     "chat.temperature",
	"chat_max_tokens":      "chat.max_tokens",
	"chat_timeout":         "chat.timeout",
	"chat_rate_per_minute": "chat.rate_per_minute",
	"chat_burst":           "chat.burst",

	// Catalog
	"catalog_seed":      "catalog.seed",
	"catalog_generated": "catalog.generated",

	// Authorization
	"casbin_model_path":  "authz.model_path",
	"casbin_policy_path": "authz.policy_path",
	"casbin_cache_ttl":   "authz.cache_ttl",

	// Recommendations
	"related_limit":    "recommend.related_limit",
	"career_path_pool": "recommend.career_path_pool",
}

// envTransformFunc maps an environment variable name to its config path,
// or "" to skip it.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
