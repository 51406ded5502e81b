// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

// Package testinfra starts throwaway PostgreSQL and Redis containers for
// integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./...
//
// Typical use:
//
//	func TestPostgresStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    pg, err := testinfra.NewPostgresContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg)
//
//	    s, err := store.OpenPostgresStore(ctx, pg.URL)
//	    // ...
//	}
//
// Tests skip rather than fail when no Docker daemon is reachable.
package testinfra
