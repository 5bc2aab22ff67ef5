package handlers

import (
	"github.com/gin-gonic/gin"

	"foodadmin/internal/dashboard"
)

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(302, "/admin/login")
	}
}

func AdminLoginPage(c *gin.Context) {
	c.HTML(200, "login.html", gin.H{})
}

// AdminOrdersPage renders the orders table. Filter and row selection are
// carried in the query string; both reset when the operator navigates away.
func AdminOrdersPage(store *dashboard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := dashboard.ParseFilter(c.Query("status"))
		selected := c.Query("selected")

		page := dashboard.BuildPage(store.Filtered(filter), filter, selected)
		c.HTML(200, "orders.html", gin.H{"page": page})
	}
}
