// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshmo/storefront-backend/internal/config"
)

const sessionContextKey = "session_id"

// Session resolves the browsing session ID from the session cookie or the
// X-Session-ID header, minting a fresh UUID when the visitor has neither.
// The ID is echoed back both ways so API clients and browsers stay in sync.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || sessionID == "" {
			sessionID = c.GetHeader("X-Session-ID")
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(sessionContextKey, sessionID)
		c.Header("X-Session-ID", sessionID)

		maxAge := int(cfg.Session.CustomerTTL.Seconds())
		c.SetCookie(cfg.Session.CookieName, sessionID, maxAge, "/", "", cfg.IsProduction(), true)

		c.Next()
	}
}

// GetSessionID extracts the session ID from gin context
func GetSessionID(c *gin.Context) string {
	sessionID, exists := c.Get(sessionContextKey)
	if !exists {
		return ""
	}
	return sessionID.(string)
}
