// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultCleanupInterval is how often Serve sweeps expired entries.
const DefaultCleanupInterval = 5 * time.Minute

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a thread-safe in-memory cache whose entries expire after a fixed
// duration. Expired entries are dropped lazily on Get and in bulk by Serve.
type TTL[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	now     func() time.Time

	statsMu sync.Mutex
	stats   Stats
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// NewTTL creates a cache with ttl as the default entry lifetime. Call Serve
// (directly or under a supervisor) to reclaim entries that are never read
// again.
func NewTTL[K comparable, V any](ttl time.Duration) *TTL[K, V] {
	return &TTL[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the value for key if present and not expired.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		c.record(func(s *Stats) { s.Misses++ })
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if cur, still := c.entries[key]; still && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		c.record(func(s *Stats) { s.Misses++; s.Evictions++ })
		return zero, false
	}
	c.record(func(s *Stats) { s.Hits++ })
	return e.value, true
}

// Set stores value under the default TTL.
func (c *TTL[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value with an explicit lifetime. A non-positive ttl
// falls back to the default.
func (c *TTL[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
	n := int64(len(c.entries))
	c.mu.Unlock()
	c.record(func(s *Stats) { s.TotalKeys = n })
}

// Delete removes key.
func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	n := int64(len(c.entries))
	c.mu.Unlock()
	c.record(func(s *Stats) {
		if ok {
			s.Evictions++
		}
		s.TotalKeys = n
	})
}

// Clear removes every entry.
func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[K]entry[V])
	c.mu.Unlock()
	c.record(func(s *Stats) {
		s.Evictions += evicted
		s.TotalKeys = 0
	})
}

// Len returns the number of stored entries, including expired ones not yet
// swept.
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a copy of the counters.
func (c *TTL[K, V]) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// HitRate returns hits as a percentage of lookups.
func (c *TTL[K, V]) HitRate() float64 {
	s := c.GetStats()
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Cleanup removes all expired entries and returns how many were dropped.
func (c *TTL[K, V]) Cleanup() int {
	now := c.now()
	c.mu.Lock()
	evicted := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			evicted++
		}
	}
	n := int64(len(c.entries))
	c.mu.Unlock()

	c.record(func(s *Stats) {
		s.Evictions += int64(evicted)
		s.TotalKeys = n
		s.LastCleanup = now
	})
	return evicted
}

// Serve sweeps expired entries every interval until ctx is cancelled. Wrap
// the cache with NewJanitor to run it under a supervisor.
func (c *TTL[K, V]) Serve(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Cleanup()
		}
	}
}

// Janitor runs a TTL cache's sweep as a supervised service.
type Janitor struct {
	name  string
	serve func(ctx context.Context) error
}

// NewJanitor returns a service that sweeps c every interval.
func NewJanitor[K comparable, V any](name string, c *TTL[K, V], interval time.Duration) *Janitor {
	return &Janitor{
		name: name,
		serve: func(ctx context.Context) error {
			return c.Serve(ctx, interval)
		},
	}
}

// Serve implements suture.Service.
func (j *Janitor) Serve(ctx context.Context) error { return j.serve(ctx) }

// String names the service for supervisor logs.
func (j *Janitor) String() string { return j.name }

func (c *TTL[K, V]) record(fn func(*Stats)) {
	c.statsMu.Lock()
	fn(&c.stats)
	c.statsMu.Unlock()
}
