// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Command server runs the CareerCanvas HTTP API.

Startup order:

 1. Configuration (koanf: defaults, config.yaml, environment)
 2. Store (memory, BadgerDB or PostgreSQL)
 3. Career catalog (static records plus seeded generated ones)
 4. Snapshot cache (memory, Redis or none) and recommendation assembler
 5. Authentication, admin bootstrap and casbin authorization
 6. Chat service (OpenAI-compatible client or canned fallback)
 7. Supervisor tree with the HTTP server and maintenance services

# Example Usage

Development with defaults (memory store, session auth):

	./careercanvas

Production with PostgreSQL, Redis and JWT:

	export ENVIRONMENT=production
	export STORAGE_BACKEND=postgres
	export DATABASE_URL=postgres://careercanvas:secret@db:5432/careercanvas
	export CACHE_BACKEND=redis
	export REDIS_URL=redis://cache:6379/0
	export AUTH_MODE=jwt
	export JWT_SECRET=$(openssl rand -base64 32)
	export CORS_ORIGINS=https://careers.example.com
	./careercanvas

SIGINT and SIGTERM stop the supervisor tree, which drains in-flight
requests for up to server.shutdown_timeout.
*/
package main
