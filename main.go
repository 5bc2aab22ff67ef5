package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"foodadmin/internal/assets"
	"foodadmin/internal/auth"
	"foodadmin/internal/backend"
	"foodadmin/internal/config"
	"foodadmin/internal/dashboard"
	"foodadmin/internal/database"
	"foodadmin/internal/handlers"
	"foodadmin/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI, config.AppEnv.APIVersion, config.AppEnv.BackendToken)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	mongoBackend := backend.NewMongo(db)
	if err := mongoBackend.Ping(context.Background()); err != nil {
		log.Fatal("MongoDB unreachable:", err)
	}

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("⚠️ order index warning: %v", err)
	}
	if err := database.EnsureFoodIndexes(db); err != nil {
		log.Printf("⚠️ food index warning: %v", err)
	}

	assetStore, err := assets.NewStore(db)
	if err != nil {
		log.Fatal(err)
	}

	store := dashboard.NewStore(mongoBackend)

	// The order list is fetched once; a failure here is logged and the
	// console starts with an empty table.
	if err := store.Load(context.Background()); err != nil {
		log.Println("[ORDERS] [ERROR] initial fetch failed:", err)
	}

	verifier := auth.EnvCredentials{
		Username:     config.AppEnv.AdminUsername,
		PasswordHash: config.AppEnv.AdminPasswordHash,
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/**/*")

	r.GET("/", handlers.Home())
	r.GET("/admin/login", handlers.AdminLoginPage)
	r.POST("/admin/login", handlers.AdminLogin(verifier, config.AppEnv.JWTSecret, config.AppEnv.SessionTTL))

	r.GET("/admin/dashboard",
		middleware.RequireSession(middleware.SessionCookie, "/admin/login"),
		handlers.AdminOrdersPage(store),
	)

	r.GET("/assets/:id", handlers.ServeAsset(assetStore))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/orders", handlers.GetOrders(store))
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus(store))
		admin.DELETE("/orders/:id", handlers.DeleteOrder(store))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
