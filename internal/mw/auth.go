package mw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-booking-backend/internal/auth"
	"hostel-booking-backend/internal/model"
)

// TokenHeader carries the session token on every authenticated request.
const TokenHeader = "X-Auth-Token"

// ContextUserID is the gin context key under which RequireRole stores the
// authenticated account id.
const ContextUserID = "auth_user_id"

// RequireRole resolves the request's token against the session store and
// rejects the request unless it belongs to an account with the given
// role. The booking engine is never reached on a failed check.
func RequireRole(sessions *auth.SessionStore, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Resolve(c.GetHeader(TokenHeader))
		if !ok || sess.Role != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(ContextUserID, sess.UserID)
		c.Next()
	}
}

// UserID returns the account id stored by RequireRole.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserID)
}
