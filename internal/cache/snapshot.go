// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/careercanvas/internal/recommend"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// DefaultSnapshotTTL is used when cache.ttl is zero.
const DefaultSnapshotTTL = 5 * time.Minute

func snapshotTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultSnapshotTTL
	}
	return ttl
}

// Config selects the snapshot cache backend. TTL is the lifetime of a
// cached snapshot in every backend; zero means DefaultSnapshotTTL.
type Config struct {
	Backend         string        `koanf:"backend"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
	RedisURL        string        `koanf:"redis_url"`
	KeyPrefix       string        `koanf:"key_prefix"`
}

// Validate checks the backend name and its required settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendNone, BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("cache.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("cache.backend must be one of none, memory, redis (got %q)", c.Backend)
	}
	if c.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	return nil
}

// MemorySnapshotCache keeps preference snapshots in a TTL cache. Cached
// snapshots are shared between readers and must not be mutated.
type MemorySnapshotCache struct {
	ttl      *TTL[int, *recommend.Snapshot]
	interval time.Duration
}

// NewMemorySnapshotCache creates a cache whose entries live for ttl.
func NewMemorySnapshotCache(ttl, cleanupInterval time.Duration) *MemorySnapshotCache {
	return &MemorySnapshotCache{
		ttl:      NewTTL[int, *recommend.Snapshot](snapshotTTL(ttl)),
		interval: cleanupInterval,
	}
}

// Get implements recommend.SnapshotCache.
func (c *MemorySnapshotCache) Get(_ context.Context, userID int) (*recommend.Snapshot, bool, error) {
	s, ok := c.ttl.Get(userID)
	return s, ok, nil
}

// Set implements recommend.SnapshotCache.
func (c *MemorySnapshotCache) Set(_ context.Context, userID int, s *recommend.Snapshot) error {
	c.ttl.Set(userID, s)
	return nil
}

// Invalidate implements recommend.SnapshotCache.
func (c *MemorySnapshotCache) Invalidate(_ context.Context, userID int) error {
	c.ttl.Delete(userID)
	return nil
}

// Backend implements recommend.SnapshotCache.
func (c *MemorySnapshotCache) Backend() string { return BackendMemory }

// Stats exposes the underlying counters.
func (c *MemorySnapshotCache) Stats() Stats { return c.ttl.GetStats() }

// Serve runs the expiry sweep until ctx is cancelled.
func (c *MemorySnapshotCache) Serve(ctx context.Context) error {
	return c.ttl.Serve(ctx, c.interval)
}

// String names the service for supervisor logs.
func (c *MemorySnapshotCache) String() string { return "snapshot-cache-janitor" }

// Open builds the configured snapshot cache. It returns nil for the none
// backend, which disables caching.
func Open(ctx context.Context, cfg Config) (recommend.SnapshotCache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case BackendMemory:
		return NewMemorySnapshotCache(cfg.TTL, cfg.CleanupInterval), nil
	case BackendRedis:
		c, err := NewRedisSnapshotCache(ctx, cfg.RedisURL, cfg.KeyPrefix, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, nil
	}
}
