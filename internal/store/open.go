// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package store

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

// Config selects and configures the persistence backend.
type Config struct {
	Backend     string `koanf:"backend"`
	BadgerPath  string `koanf:"badger_path"`
	PostgresURL string `koanf:"postgres_url"`
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
	case BackendBadger:
		if c.BadgerPath == "" {
			return fmt.Errorf("storage.badger_path is required for the badger backend")
		}
	case BackendPostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("storage.postgres_url is required for the postgres backend")
		}
	default:
		return fmt.Errorf("storage.backend must be one of memory, badger, postgres (got %q)", c.Backend)
	}
	return nil
}

// Open builds the configured backend wrapped with metrics.
func Open(ctx context.Context, cfg Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var (
		s   Store
		err error
	)
	switch cfg.Backend {
	case BackendBadger:
		s, err = OpenBadgerStore(cfg.BadgerPath)
	case BackendPostgres:
		s, err = OpenPostgresStore(ctx, cfg.PostgresURL)
	default:
		s = NewMemoryStore()
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	return Instrument(s, cfg.Backend), nil
}
