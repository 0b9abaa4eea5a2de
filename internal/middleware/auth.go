package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/models"
)

// RequireUser aborts anonymous requests with 401.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error_code": "authentication_required",
				"message":    "Please log in to continue.",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates the management surface. Any request without an admin
// session gets a fixed 403, never a redirect.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || sess.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error_code": "access_denied",
				"message":    "Access denied. Admin only.",
			})
			return
		}
		c.Next()
	}
}
