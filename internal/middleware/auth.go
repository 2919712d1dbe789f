package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/response"
	"github.com/trainhub/trainhub-backend/internal/service"
)

const (
	// ContextKeyPrincipal is the Gin context key for the authenticated principal.
	ContextKeyPrincipal = "principal"

	// RoleAdmin is the only role this system knows.
	RoleAdmin = "admin"
)

// Principal is the resolved, authenticated identity attached to a request.
type Principal struct {
	Admin *model.Admin
	Role  string
}

// AdminResolver resolves a verified token subject to a live account.
type AdminResolver interface {
	GetByID(ctx context.Context, id int) (*model.Admin, error)
}

// RequireAdmin guards a route with bearer-token authentication:
//   - no token presented            -> 401
//   - invalid or expired token      -> 403
//   - subject resolves to no admin  -> 401
//
// On success the Principal is attached to the context. Applied per route
// group so public endpoints stay reachable without a token.
func RequireAdmin(authService *service.AuthService, admins AdminResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(tokenStr)
		if err != nil {
			code := response.ErrTokenInvalid
			if errors.Is(err, service.ErrTokenExpired) {
				code = response.ErrTokenExpired
			}
			response.AbortFail(c, http.StatusForbidden, code)
			return
		}

		admin, err := admins.GetByID(c.Request.Context(), claims.AdminID)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrNoMatchingAdmin)
			return
		}

		c.Set(ContextKeyPrincipal, &Principal{Admin: admin, Role: RoleAdmin})
		c.Next()
	}
}

// GetPrincipal retrieves the authenticated principal from the Gin context.
func GetPrincipal(c *gin.Context) *Principal {
	val, exists := c.Get(ContextKeyPrincipal)
	if !exists {
		return nil
	}
	p, ok := val.(*Principal)
	if !ok {
		return nil
	}
	return p
}

// extractToken pulls the bearer token from the Authorization header, with
// a ?token= query fallback for callback-style routes that cannot set
// headers.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return c.Query("token")
}
