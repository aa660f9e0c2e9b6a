package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/problem"
	"github.com/langschool/contentapi/internal/services"
)

// Context keys for user data
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUserName = "auth_username"
	ContextKeyRole     = "auth_role"
)

// DefaultUserID is used when authentication is disabled
const DefaultUserID = uint(0)

var errInsufficientRole = apperr.Forbidden("insufficient_role", "insufficient permissions")

// Middleware authenticates API requests with bearer tokens.
type Middleware struct {
	service *Service
	config  config.Auth
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service, cfg config.Auth) *Middleware {
	return &Middleware{service: service, config: cfg}
}

// Handler returns a Gin middleware handler that authenticates requests.
// Mount it only on routes that need a caller.
func (m *Middleware) Handler() gin.HandlerFunc {
	if m.config.Mode == config.AuthModeNone {
		return m.noAuthHandler()
	}
	return m.bearerHandler()
}

// noAuthHandler treats every request as an administrator.
func (m *Middleware) noAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyUserID, DefaultUserID)
		c.Set(ContextKeyRole, entities.RoleAdmin)
		c.Next()
	}
}

func (m *Middleware) bearerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			problem.Write(c, ErrInvalidToken)
			return
		}

		user, err := m.service.Authenticate(c.Request.Context(), token)
		if err != nil {
			problem.Write(c, err)
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUserName, user.UserName)
		c.Set(ContextKeyRole, user.Role)
		c.Next()
	}
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRole returns a middleware that requires one of the given roles.
func (m *Middleware) RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	roleSet := make(map[entities.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		if !roleSet[GetUserRole(c)] {
			problem.Write(c, errInsufficientRole)
			return
		}
		c.Next()
	}
}

// RequireEditor allows administrators and editors.
func (m *Middleware) RequireEditor() gin.HandlerFunc {
	return m.RequireRole(entities.RoleAdmin, entities.RoleEditor)
}

// RequireAdmin allows administrators only.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(entities.RoleAdmin)
}

// Helper functions to extract auth data from Gin context

// GetUserID retrieves the authenticated user's ID from the context.
// Returns DefaultUserID (0) if not authenticated or auth is disabled.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return DefaultUserID
}

// GetUserName retrieves the authenticated user's name from the context.
func GetUserName(c *gin.Context) string {
	return c.GetString(ContextKeyUserName)
}

// GetUserRole retrieves the authenticated user's role from the context.
func GetUserRole(c *gin.Context) entities.UserRole {
	if r, exists := c.Get(ContextKeyRole); exists {
		if role, ok := r.(entities.UserRole); ok {
			return role
		}
	}
	return ""
}

// GetActor returns the caller as a service actor.
func GetActor(c *gin.Context) services.Actor {
	return services.Actor{UserID: GetUserID(c), Role: GetUserRole(c)}
}
