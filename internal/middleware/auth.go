package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"society-billing-svc/internal/service"
	"society-billing-svc/pkg/logger"
	"society-billing-svc/pkg/utils"
)

// AuthCookieName is the cookie the admin frontend stores the session token
// in.
const AuthCookieName = "auth-token"

// AuthRequired validates the signed session token on every protected call.
// The token is read from the auth-token cookie or an Authorization bearer
// header.
func AuthRequired(authService service.AuthService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}

		if err := authService.ValidateToken(token); err != nil {
			log.WithError(err).WithField("path", c.Request.URL.Path).Warn("Rejected invalid session token")
			utils.UnauthorizedResponse(c, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
