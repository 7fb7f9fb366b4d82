package main

import (
	"time"

	"blog-app/config"
	"blog-app/database"
	blogsapi "blog-app/internal/api/blogs"
	routes "blog-app/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	r := gin.Default()

	// CORS must be registered before the routes.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cfg := config.Upload()
	routes.RegisterRoutes(r, blogsapi.NewHandler(database.DB, cfg), cfg)

	r.Run(":" + config.PORT)
}
