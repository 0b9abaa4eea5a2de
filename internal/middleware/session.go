package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/config"
	"github.com/serviplan/booking-api/internal/session"
)

const ContextSession = "session"

// LoadSession resolves the session cookie against the store and attaches
// the session to the request context. A missing or stale cookie leaves the
// request anonymous; the gate middlewares decide what that means per route.
func LoadSession(store session.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.SessionCookie)
		if err != nil || id == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// CurrentSession returns the session attached by LoadSession, or nil for
// anonymous requests.
func CurrentSession(c *gin.Context) *session.Session {
	val, exists := c.Get(ContextSession)
	if !exists {
		return nil
	}
	sess, ok := val.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
