package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "nutcha_session"
	sessionMaxAge = 60 * 60 * 24 * 30

	// SessionKey is the gin context key holding the session id.
	SessionKey = "session_id"
)

// SessionMiddleware identifies the guest session that owns the cart, drafts
// and preferences. An X-Session-Id header wins (API clients); otherwise the
// session cookie is read, and a fresh id is issued when neither is present.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader("X-Session-Id")
		if sid == "" {
			sid, _ = c.Cookie(sessionCookie)
		}
		if sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}

		c.Set(SessionKey, sid)
		c.Next()
	}
}
