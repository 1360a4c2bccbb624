package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/salesdesk/quote-service/internal/adapters/http/dto"
	"github.com/salesdesk/quote-service/internal/platform/config"
)

const (
	// ContextKeyClaims is the gin context key for storing extracted claims.
	ContextKeyClaims = "claims"

	// Default header names if not configured.
	defaultSubjectHeader = "X-User-ID"
	defaultRolesHeader   = "X-User-Roles"
	defaultScopesHeader  = "X-User-Scopes"
)

// Claims is the caller identity extracted from gateway headers. The
// gateway validates the JWT and forwards the relevant claims as plain
// headers; this service trusts them as-is.
type Claims struct {
	// Subject is the user ID (sub claim). Quote and chat ownership
	// checks compare against this value.
	Subject string

	// Roles assigned to the user. Catalog mutations require "admin".
	Roles []string

	// Scopes granted to the caller (OAuth2 scope claim).
	Scopes []string
}

// HasRole reports whether the user carries the given role.
func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// HasAnyRole reports whether the user carries any of the given roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	return slices.ContainsFunc(roles, c.HasRole)
}

// HasScope reports whether the caller was granted the given scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ExtractClaims reads identity headers off the request. Header names
// come from AuthConfig, falling back to the X-User-* defaults.
func ExtractClaims(c *gin.Context, cfg *config.AuthConfig) *Claims {
	var subjectHeader, rolesHeader, scopesHeader string
	if cfg != nil {
		subjectHeader = cfg.SubjectHeader
		rolesHeader = cfg.RolesHeader
		scopesHeader = cfg.ScopesHeader
	}

	claims := &Claims{
		Subject: c.GetHeader(headerOr(subjectHeader, defaultSubjectHeader)),
	}

	// Roles are comma-separated; scopes are space-separated per the
	// OAuth2 convention.
	if rolesStr := c.GetHeader(headerOr(rolesHeader, defaultRolesHeader)); rolesStr != "" {
		claims.Roles = splitTrimmed(rolesStr, ",")
	}

	if scopesStr := c.GetHeader(headerOr(scopesHeader, defaultScopesHeader)); scopesStr != "" {
		claims.Scopes = strings.Fields(scopesStr)
	}

	return claims
}

func headerOr(name, fallback string) string {
	if name != "" {
		return name
	}

	return fallback
}

// GetClaims retrieves claims stored by RequireAuth, or nil.
func GetClaims(c *gin.Context) *Claims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		if cl, ok := claims.(*Claims); ok {
			return cl
		}
	}

	return nil
}

// RequireAuth returns middleware that rejects requests without an
// authenticated subject. Extracted claims are stored on the gin
// context for handlers.
func RequireAuth(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ExtractClaims(c, cfg)

		if claims.Subject == "" {
			abortWithForbidden(c, "authentication required")
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRole returns middleware that rejects callers lacking the role.
// It runs after RequireAuth and reuses the claims it stored.
func RequireRole(cfg *config.AuthConfig, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			claims = ExtractClaims(c, cfg)
			c.Set(ContextKeyClaims, claims)
		}

		if !claims.HasRole(role) {
			abortWithForbidden(c, "insufficient permissions: role "+role+" required")
			return
		}

		c.Next()
	}
}

// abortWithForbidden aborts with a 403 response in the standard error shape.
func abortWithForbidden(c *gin.Context, message string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeForbidden, message)

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(http.StatusForbidden, errResp)
}

// splitTrimmed splits on sep and drops empty or whitespace-only parts.
func splitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
