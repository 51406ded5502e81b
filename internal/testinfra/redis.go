// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DefaultRedisImage is the Redis image used by integration tests.
const DefaultRedisImage = "redis:7-alpine"

const redisPort = "6379/tcp"

// RedisContainer is a running Redis instance.
type RedisContainer struct {
	testcontainers.Container
	// URL is a redis:// URL accepted by redis.ParseURL.
	URL string
}

// NewRedisContainer creates and starts a Redis container.
func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        DefaultRedisImage,
		ExposedPorts: []string{redisPort},
		WaitingFor: wait.ForAll(
			wait.ForLog("Ready to accept connections"),
			wait.ForListeningPort(redisPort),
		).WithStartupTimeout(30 * time.Second),
	}

	container, host, err := startContainer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("start redis container: %w", err)
	}
	port, err := container.MappedPort(ctx, redisPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}
	addr := host + ":" + port.Port()

	return &RedisContainer{
		Container: container,
		URL:       "redis://" + addr + "/0",
	}, nil
}
