package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recyclezone/marketplace/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// AccessLevel is the caller requirement of a route
type AccessLevel int

const (
	AccessPublic AccessLevel = iota
	AccessAuthenticated
	AccessAdmin
)

func (l AccessLevel) String() string {
	switch l {
	case AccessAuthenticated:
		return "authenticated"
	case AccessAdmin:
		return "admin"
	default:
		return "public"
	}
}

// RouteAccess binds a route pattern to its access level
type RouteAccess struct {
	Method string // HTTP method (GET, POST, etc.)
	Path   string // gin route pattern, e.g. /orders/:id
	Level  AccessLevel
}

// AccessPolicy is the single table of route requirements. Routes that are
// not listed are public.
type AccessPolicy struct {
	routes map[string]AccessLevel
}

// NewAccessPolicy builds a policy from route entries. A later entry for the
// same route replaces an earlier one.
func NewAccessPolicy(routes ...RouteAccess) *AccessPolicy {
	p := &AccessPolicy{routes: make(map[string]AccessLevel, len(routes))}
	for _, r := range routes {
		p.routes[policyKey(r.Method, r.Path)] = r.Level
	}
	return p
}

// Level returns the requirement for method and route pattern
func (p *AccessPolicy) Level(method, path string) AccessLevel {
	return p.routes[policyKey(method, path)]
}

func policyKey(method, path string) string {
	return method + " " + path
}

// RoleResolver reports whether an email belongs to an admin
type RoleResolver interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin returns a guard that admits only admins. It must run after
// RequireAuthenticated. Unknown users are not admins.
func RequireAdmin(resolver RoleResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authorizeAdmin(c, resolver, log) {
			c.Next()
		}
	}
}

func authorizeAdmin(c *gin.Context, resolver RoleResolver, log *zap.Logger) bool {
	email := GetCallerEmail(c)
	if email == "" {
		abortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
		return false
	}

	isAdmin, err := resolver.IsAdmin(c.Request.Context(), email)
	if err != nil {
		if log != nil {
			log.Error("Failed to resolve caller role", zap.String("user_email", email), zap.Error(err))
		}
		abortWithError(c, dto.ErrCodeInternal, "An unexpected error occurred")
		return false
	}
	if !isAdmin {
		if log != nil {
			log.Warn("Admin access denied",
				zap.String("user_email", email),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		}
		abortWithError(c, dto.ErrCodeForbidden, "Access denied: admin role required")
		return false
	}
	return true
}

// AccessPolicyConfig holds what the policy middleware needs to enforce levels
type AccessPolicyConfig struct {
	Policy   *AccessPolicy
	Auth     AuthConfig
	Resolver RoleResolver
	Logger   *zap.Logger
}

// AccessPolicyMiddleware enforces the policy for the matched route. It must
// be installed on the engine before routes are registered so c.FullPath()
// is the route pattern.
func AccessPolicyMiddleware(cfg AccessPolicyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		switch cfg.Policy.Level(c.Request.Method, path) {
		case AccessAuthenticated:
			if !authenticate(c, cfg.Auth) {
				return
			}
		case AccessAdmin:
			if !authenticate(c, cfg.Auth) || !authorizeAdmin(c, cfg.Resolver, cfg.Logger) {
				return
			}
		}
		c.Next()
	}
}
