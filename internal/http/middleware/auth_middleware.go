package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// One message for every authentication failure so callers cannot tell a bad
// signature from an expired token or an unknown subject.
const credentialsError = "could not validate credentials"

// Context keys set by the authenticator for downstream handlers
const (
	ContextUserKey = "user"
	ContextRoleKey = "user_role"
)

// AuthMiddleware resolves a bearer token into an authenticated identity.
//
// The session cache is consulted first, keyed by the raw token; a hit skips
// both signature verification and the user lookup. On a miss the token is
// verified, the subject resolved against storage, and the public snapshot
// written back under the original token.
func AuthMiddleware(tokenSvc domain.TokenService, cache domain.SessionCache, userRepo domain.UserRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": credentialsError})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": credentialsError})
			c.Abort()
			return
		}
		token := tokenParts[1]

		if snapshot, err := cache.Get(c.Request.Context(), token); err == nil {
			c.Set(ContextUserKey, snapshot)
			c.Set(ContextRoleKey, snapshot.Role)
			c.Next()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": credentialsError})
			c.Abort()
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			// A missing subject is an authentication failure, a broken
			// lookup is not.
			if errors.Is(err, domain.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": credentialsError})
			} else {
				log.Printf("AUTH_LOOKUP_FAILED: subject=%s error=%v", claims.Subject, err)
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "authentication check failed"})
			}
			c.Abort()
			return
		}

		snapshot := user.Snapshot()
		if err := cache.Put(c.Request.Context(), token, snapshot); err != nil {
			// The identity is already resolved, a failed cache write only
			// costs the next request a full verification.
			log.Printf("SESSION_CACHE_WRITE_FAILED: user_id=%d error=%v", user.ID, err)
		}

		c.Set(ContextUserKey, snapshot)
		c.Set(ContextRoleKey, snapshot.Role)
		c.Next()
	})
}

// CurrentUser extracts the resolved identity set by AuthMiddleware
func CurrentUser(c *gin.Context) (*domain.UserSnapshot, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	snapshot, ok := value.(*domain.UserSnapshot)
	return snapshot, ok
}
