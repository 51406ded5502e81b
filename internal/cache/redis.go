// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/careercanvas/internal/metrics"
	"github.com/tomtom215/careercanvas/internal/recommend"
)

// DefaultKeyPrefix namespaces snapshot keys in a shared Redis.
const DefaultKeyPrefix = "careercanvas:snapshot:"

// RedisSnapshotCache stores JSON-encoded snapshots in Redis so that several
// API replicas share one cache.
type RedisSnapshotCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSnapshotCache connects to url and verifies the connection.
func NewRedisSnapshotCache(ctx context.Context, url, prefix string, ttl time.Duration) (*RedisSnapshotCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisSnapshotCacheWithClient(client, prefix, ttl), nil
}

// NewRedisSnapshotCacheWithClient wraps an existing client. Keys expire
// after ttl, or DefaultSnapshotTTL when ttl is zero.
func NewRedisSnapshotCacheWithClient(client *redis.Client, prefix string, ttl time.Duration) *RedisSnapshotCache {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisSnapshotCache{client: client, prefix: prefix, ttl: snapshotTTL(ttl)}
}

func (c *RedisSnapshotCache) key(userID int) string {
	return c.prefix + strconv.Itoa(userID)
}

func (c *RedisSnapshotCache) fail(op string, err error) error {
	metrics.SnapshotCacheErrors.WithLabelValues(BackendRedis, op).Inc()
	return fmt.Errorf("redis snapshot %s: %w", op, err)
}

// Get implements recommend.SnapshotCache.
func (c *RedisSnapshotCache) Get(ctx context.Context, userID int) (*recommend.Snapshot, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, c.fail("get", err)
	}
	var s recommend.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, c.fail("decode", err)
	}
	return &s, true, nil
}

// Set implements recommend.SnapshotCache.
func (c *RedisSnapshotCache) Set(ctx context.Context, userID int, s *recommend.Snapshot) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return c.fail("encode", err)
	}
	if err := c.client.Set(ctx, c.key(userID), raw, c.ttl).Err(); err != nil {
		return c.fail("set", err)
	}
	return nil
}

// Invalidate implements recommend.SnapshotCache.
func (c *RedisSnapshotCache) Invalidate(ctx context.Context, userID int) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return c.fail("delete", err)
	}
	return nil
}

// Backend implements recommend.SnapshotCache.
func (c *RedisSnapshotCache) Backend() string { return BackendRedis }

// Ping checks the connection.
func (c *RedisSnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}
