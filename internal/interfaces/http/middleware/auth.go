package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Try to get token from cookie first
		token := utils.GetTokenFromCookie(c, utils.SessionCookie)

		// Fallback to Authorization header for API clients
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}

			token = parts[1]
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserCapabilities, claims.Capabilities)

		c.Next()
	}
}

// RequireCapability gates a route group on one capability from the session.
func (m *AuthMiddleware) RequireCapability(capability user.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		capabilities := CapabilitiesFromContext(c)
		if !capabilities.Has(capability) {
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID, zero when absent.
func UserIDFromContext(c *gin.Context) uint {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0
	}
	userID, ok := value.(uint)
	if !ok {
		return 0
	}
	return userID
}

// CapabilitiesFromContext returns the session capability set. Unknown values
// were rejected at login, so parsing cannot fail here.
func CapabilitiesFromContext(c *gin.Context) user.Capabilities {
	value, exists := c.Get(constants.ContextKeyUserCapabilities)
	if !exists {
		return nil
	}
	raw, ok := value.([]string)
	if !ok {
		return nil
	}
	capabilities, err := user.NewCapabilities(raw)
	if err != nil {
		return nil
	}
	return capabilities
}
