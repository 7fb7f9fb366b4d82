package routes

import (
	"net/http"

	"blog-app/config"
	authapi "blog-app/internal/api/auth"
	blogsapi "blog-app/internal/api/blogs"
	"blog-app/internal/app/http/middleware"
	"blog-app/web"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *blogsapi.Handler, cfg config.UploadConfig) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Blog resource; public, multipart on the write endpoints.
	r.GET("/blogs", h.List)
	r.POST("/blogs", h.Create)
	r.GET("/blogs/:id", h.Get)
	r.PUT("/blogs/:id", h.Update)
	r.DELETE("/blogs/:id", h.Delete)

	// Stored images are served straight from the upload directory.
	r.Static("/uploads/blogs", cfg.Dir)

	r.POST("/login", authapi.Login)

	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/user", authapi.CurrentUser)

	// Embedded frontend.
	r.GET("/", servePage("static/index.html"))
	r.GET("/create", servePage("static/create.html"))
	r.GET("/edit/:id", servePage("static/create.html"))
}

func servePage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := web.Assets.ReadFile(name)
		if err != nil {
			c.String(http.StatusNotFound, "page not found")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
}
