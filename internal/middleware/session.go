package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the persisted login marker. Set once on login, never
// cleared; there is no logout path.
const SessionCookie = "adminSession"

// RequireSession guards HTML pages with a presence-only cookie check and a
// redirect to the login entry point. One abstraction, parameterized, used for
// every protected page.
func RequireSession(cookieName, redirectTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(cookieName)
		if err != nil || value == "" {
			c.Redirect(http.StatusFound, redirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}
