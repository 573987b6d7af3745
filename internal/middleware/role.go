package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group on the role claim that
// AuthMiddleware put in the context. Catalog writes (dish image
// uploads) are the only admin surface; everything else is per-user.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString("userRole")
		if current == "" {
			// no role claim means AuthMiddleware never ran on this route
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing role"})
			return
		}

		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}
