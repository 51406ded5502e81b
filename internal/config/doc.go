// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Package config loads and validates the CareerCanvas configuration.

# Configuration Sources

Load layers three sources with koanf, later ones overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: CONFIG_PATH, else config.yaml, config.yml or
    /etc/careercanvas/config.{yaml,yml}
 3. Environment variables listed in envMappings

Comma-separated environment values are split for slice settings such as
CORS_ORIGINS.

# Configuration Structure

  - server: listen address, timeouts, environment
  - logging: level, format, caller
  - storage: memory, badger or postgres backend
  - cache: preference snapshot cache (none, memory, redis) and its TTL
  - security: auth mode, JWT secret, sessions, CORS, rate limits, bootstrap admin
  - chat: OpenAI settings, per-user rate limit, circuit breaker
  - catalog: generated career seed
  - authz: optional Casbin model and policy files
  - recommend: related limit, career path pool

Sections owned by other packages reuse their Config types, so each package
validates its own settings and Validate here adds the cross-cutting and
production checks.

# Example

	export STORAGE_BACKEND=postgres
	export DATABASE_URL=postgres://careercanvas:secret@db:5432/careercanvas
	export AUTH_MODE=jwt
	export JWT_SECRET=$(openssl rand -base64 48)
	export OPENAI_API_KEY=sk-...
*/
package config
