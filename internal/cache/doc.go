// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Package cache holds short-lived copies of per-user preference snapshots so
that feed requests do not re-read every liked element from the store.

# Backends

  - MemorySnapshotCache: a generic TTL map local to the process. Its Serve
    method sweeps expired entries and runs under the supervisor tree.
  - RedisSnapshotCache: JSON snapshots in Redis with native key expiry, for
    deployments with more than one API replica.

Both implement recommend.SnapshotCache. Open picks one from Config; the
"none" backend returns a nil cache and the assembler then reads the store on
every request.

# Consistency

Every preference mutation invalidates the user's entry, so a feed served
after a like or unlike reflects it. TTL only bounds how long an entry for an
idle user survives.

# TTL

TTL is the generic building block:

	c := cache.NewTTL[string, int](5 * time.Minute)
	c.Set("a", 1)
	if v, ok := c.Get("a"); ok {
	    // use v
	}

Hits, misses and evictions are counted in Stats.
*/
package cache
