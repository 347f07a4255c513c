package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"khanhomstore/internal/storage"
)

// NewRouter assembles the gin engine: CORS for the mobile client, static
// serving of the upload dir, the /api group, and a DB health probe. ping may
// be nil when there is no database behind the handlers (tests).
func NewRouter(h *ProductHandler, images *storage.ImageStore, ping func() error) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.Static("/uploads/images", images.Root())

	r.GET("/health", func(c *gin.Context) {
		if ping != nil {
			if err := ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api")
	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is running..."})
	})
	api.GET("/products", h.List)
	api.GET("/products/:id", h.Get)
	api.POST("/products", h.Create)
	api.PUT("/products/:id", h.Update)
	api.DELETE("/products/:id", h.Delete)

	return r
}
