package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"foodadmin/internal/auth"
	"foodadmin/internal/middleware"
)

// AdminLogin verifies the submitted credentials through the injected
// verifier. On success it sets the persisted session cookie (there is no
// logout, so its lifetime is effectively unbounded) and sends the operator to
// the dashboard. On mismatch it re-renders the login form with an error and
// writes nothing.
func AdminLogin(verifier auth.Verifier, jwtSecret string, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/login"
		defer handlePanic(c, route)

		username := strings.TrimSpace(c.PostForm("username"))
		password := c.PostForm("password")

		if !verifier.Verify(username, password) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"error": "Invalid username or password",
			})
			return
		}

		claims := jwt.MapClaims{
			"sub":  username,
			"role": "admin",
			"exp":  time.Now().Add(sessionTTL).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		c.SetCookie(middleware.SessionCookie, signed, int(sessionTTL.Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, "/admin/dashboard")
	}
}
