// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

// Package store persists users, liked elements, quiz results and chat
// conversations.
//
// Three backends implement the Store interface:
//
//   - MemoryStore: process memory, used by tests and single-node demos
//   - BadgerStore: embedded BadgerDB, on disk or in memory
//   - PostgresStore: PostgreSQL through a pgx connection pool
//
// Open selects a backend from Config and wraps it in Instrumented, which
// records Prometheus latency and error metrics per operation.
//
// Every backend assigns identifiers itself. Liking an element is idempotent:
// a repeated like returns the existing row with created set to false, and
// concurrent duplicates resolve to a single row.
package store
