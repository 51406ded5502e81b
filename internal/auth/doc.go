// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Package auth provides account sign-up and sign-in, password hashing and
request authentication.

# Modes

Two authentication modes are supported, selected by security.auth_mode:

  - jwt: HS256 tokens signed with security.jwt_secret. Clients send the token
    in an "Authorization: Bearer" header or the "token" cookie set at login.
    Logout clears the cookie; tokens stay valid until they expire.
  - session: an opaque session id in an HttpOnly cookie, backed by a
    SessionStore (memory or BadgerDB). Each request slides the expiry and
    logout deletes the session.

# Passwords

Passwords are hashed with bcrypt at cost 12. Login compares against a dummy
hash for unknown usernames so both failure cases cost the same.

# Middleware

Middleware.Authenticate attaches a Principal to the request context when
the request carries valid credentials and leaves it anonymous otherwise.
Routes that require a caller check PrincipalFromContext and respond 401.
Ownership checks live in the authz package.
*/
package auth
