// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Package authz decides which users may reach which per-user resources.

Authorization uses Casbin with an RBAC model extended by an owner check.
Requests are (role, path, action, caller, owner) tuples. Policies carry a
scope: "own" rules match only when the caller is the owner of the resource,
"any" rules match regardless. Roles inherit through grouping rules, so the
admin role also holds every user rule.

The model and the default policy are embedded. Config.ModelPath and
Config.PolicyPath override them with files on disk.

Default policy:

	p, admin, /api/v1/*, (read)|(write)|(delete), any
	p, user, /api/v1/users/:id/*, (read)|(write)|(delete), own
	p, user, /api/v1/quiz-results/:id, read, own
	p, user, /api/v1/conversations/:id, read, own
	g, admin, user

Middleware.RequireOwner applies the policy to routes carrying the owning
user id as a URL parameter. Handlers that find the owner only after a
lookup, such as appending to a conversation, call Enforcer.CanAccessUser.
*/
package authz
