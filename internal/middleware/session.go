package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobify/api/internal/config"
	"jobify/api/internal/models"
	"jobify/api/internal/security"
)

const identityKey = "identity"

// Identity is the resolved caller attached to the request context by the
// session middleware. It is threaded explicitly through handlers instead of
// being looked up ambiently.
type Identity struct {
	UserID    string
	Role      models.UserRole
	IsDemo    bool
	TokenID   string
	ExpiresAt time.Time
}

func (id Identity) IsAdmin() bool {
	return id.Role == models.UserRoleAdmin
}

// Session authenticates the request from its session cookie. demoUserID is
// the id of the seeded shared demo account; a matching identity is flagged
// read-only downstream.
func Session(cfg *config.AppConfig, denyList *security.DenyList, demoUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cfg.Security.CookieName)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "authentication required"})
			return
		}

		claims, err := security.ParseSessionToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "authentication invalid"})
			return
		}

		revoked, err := denyList.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "authentication invalid"})
			return
		}

		SetIdentity(c, Identity{
			UserID:    claims.UserID,
			Role:      claims.Role,
			IsDemo:    demoUserID != "" && claims.UserID == demoUserID,
			TokenID:   claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
		})

		c.Next()
	}
}

// SetIdentity attaches a resolved identity to the request context.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity returns the identity resolved by the session middleware.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := val.(Identity)
	return identity, ok
}
