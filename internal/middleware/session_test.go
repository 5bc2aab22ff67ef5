package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func guardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/dashboard", RequireSession(SessionCookie, "/admin/login"), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	return r
}

func TestRequireSessionRedirectsToLoginWithoutCookie(t *testing.T) {
	r := guardRouter()

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/admin/login" {
		t.Fatalf("expected redirect to login, got %q", got)
	}
}

func TestRequireSessionPassesWithCookiePresent(t *testing.T) {
	r := guardRouter()

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "anything"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with cookie present, got %d", w.Code)
	}
}
