// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

//go:build integration

package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/careercanvas/internal/models"
	"github.com/tomtom215/careercanvas/internal/testinfra"
)

func TestRedisSnapshotCache(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	rc, err := testinfra.NewRedisContainer(ctx)
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, rc)

	c, err := NewRedisSnapshotCache(ctx, rc.URL, "test:", time.Minute)
	if err != nil {
		t.Fatalf("NewRedisSnapshotCache() error = %v", err)
	}
	defer c.Close()

	if _, ok, err := c.Get(ctx, 1); ok || err != nil {
		t.Fatalf("Get(empty) = %v, %v; want miss", ok, err)
	}

	s := testSnapshot()
	if err := c.Set(ctx, 1, s); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := c.Get(ctx, 1)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want hit", ok, err)
	}
	if !reflect.DeepEqual(got.Values(models.ElementSkill), []string{"Go"}) {
		t.Errorf("skills = %v", got.Values(models.ElementSkill))
	}
	if _, liked := got.DirectlyLiked[2]; !liked {
		t.Error("direct like lost in round trip")
	}

	if ttl := c.client.TTL(ctx, "test:1").Val(); ttl <= 0 || ttl > time.Minute {
		t.Errorf("key ttl = %v, want within (0, 1m]", ttl)
	}

	if err := c.Invalidate(ctx, 1); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, 1); ok {
		t.Error("Get() hit after Invalidate")
	}
}
