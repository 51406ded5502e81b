// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package authz

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/cache"
	"github.com/tomtom215/careercanvas/internal/metrics"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Actions used in policies.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
)

// Config locates an optional model and policy on disk. Empty paths, or paths
// that do not exist, fall back to the embedded defaults.
type Config struct {
	ModelPath  string        `koanf:"model_path"`
	PolicyPath string        `koanf:"policy_path"`
	CacheTTL   time.Duration `koanf:"cache_ttl"`
}

// Enforcer decides whether a principal may perform an action on a path
// owned by a given user. Decisions are cached for CacheTTL.
type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
	cache    *cache.TTL[string, bool]
}

// NewEnforcer loads the model and policy.
func NewEnforcer(cfg Config) (*Enforcer, error) {
	var (
		m   model.Model
		err error
	)
	if cfg.ModelPath != "" && fileExists(cfg.ModelPath) {
		m, err = model.NewModelFromFile(cfg.ModelPath)
	} else {
		m, err = model.NewModelFromString(embeddedModel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	var enforcer *casbin.SyncedEnforcer
	if cfg.PolicyPath != "" && fileExists(cfg.PolicyPath) {
		enforcer, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(cfg.PolicyPath))
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
		if err == nil {
			err = loadPolicy(enforcer, embeddedPolicy)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer}
	if cfg.CacheTTL > 0 {
		e.cache = cache.NewTTL[string, bool](cfg.CacheTTL)
	}
	return e, nil
}

// loadPolicy adds the rules of a policy CSV to enforcer.
func loadPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case parts[0] == "p" && len(parts) == 5:
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3], parts[4]); err != nil {
				return fmt.Errorf("failed to add policy %v: %w", parts[1:], err)
			}
		case parts[0] == "g" && len(parts) == 3:
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("failed to add grouping policy %v: %w", parts[1:], err)
			}
		default:
			return fmt.Errorf("malformed policy line %q", line)
		}
	}
	return nil
}

// Enforce evaluates role acting on object. callerID and ownerID decide rules
// scoped to the caller's own resources.
func (e *Enforcer) Enforce(role, object, action string, callerID, ownerID int) (bool, error) {
	caller, owner := strconv.Itoa(callerID), strconv.Itoa(ownerID)
	key := role + "|" + object + "|" + action + "|" + caller + "|" + owner
	if e.cache != nil {
		if allowed, ok := e.cache.Get(key); ok {
			return allowed, nil
		}
	}

	allowed, err := e.enforcer.Enforce(role, object, action, caller, owner)
	if err != nil {
		return false, fmt.Errorf("enforcement failed: %w", err)
	}
	if e.cache != nil {
		e.cache.Set(key, allowed)
	}
	return allowed, nil
}

// Authorize checks principal p against object. A nil principal is never
// allowed.
func (e *Enforcer) Authorize(p *auth.Principal, object, action string, ownerID int) (bool, error) {
	if p == nil {
		return false, errors.New("no principal")
	}
	allowed, err := e.Enforce(p.Role, object, action, p.UserID, ownerID)
	switch {
	case err != nil:
		metrics.AuthzDecisions.WithLabelValues("error").Inc()
	case allowed:
		metrics.AuthzDecisions.WithLabelValues("allow").Inc()
	default:
		metrics.AuthzDecisions.WithLabelValues("deny").Inc()
	}
	return allowed, err
}

// CanAccessUser reports whether p may act on resources owned by ownerID
// outside any particular route, such as a conversation looked up by id.
func (e *Enforcer) CanAccessUser(p *auth.Principal, ownerID int, action string) (bool, error) {
	return e.Authorize(p, "/api/v1/users/"+strconv.Itoa(ownerID)+"/resources", action, ownerID)
}

// RolesFor returns the roles role inherits from, itself excluded.
func (e *Enforcer) RolesFor(role string) ([]string, error) {
	return e.enforcer.GetRolesForUser(role)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
