package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobify/api/internal/models"
)

// RequireRoles gates a route to the given roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "authentication required"})
			return
		}

		if _, ok := roleSet[identity.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "unauthorized to access this route"})
			return
		}

		c.Next()
	}
}

// DenyDemo blocks mutations from the shared demo account.
func DenyDemo() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "authentication required"})
			return
		}

		if identity.IsDemo {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "Demo User. Read Only!"})
			return
		}

		c.Next()
	}
}
