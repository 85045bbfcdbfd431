package routes

import (
	"net/http"
	"strings"

	"github.com/Asahu22/E-commerce/controllers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes binds every endpoint. Protected routes take the admin
// guard per route so GET /api/products stays public.
func RegisterRoutes(
	r *gin.Engine,
	auth *controllers.AuthController,
	products *controllers.ProductController,
	pages *controllers.PagesController,
	requireAdmin gin.HandlerFunc,
	uploadsDir, frontendDir string,
) {
	api := r.Group("/api")
	{
		api.POST("/admin/login", auth.Login)
		api.GET("/products", products.GetProducts)
		api.POST("/products", requireAdmin, products.CreateProduct)
		api.DELETE("/products/:id", requireAdmin, products.DeleteProduct)
		api.GET("/health", products.HealthCheck)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", pages.Landing)
	r.GET("/shop", pages.Shop)
	r.GET("/admin", pages.Admin)

	// Legacy url-mode images stay servable.
	r.Static("/uploads", uploadsDir)

	// Remaining frontend assets (scripts, styles) fall through to the
	// frontend directory.
	assets := http.FileServer(http.Dir(frontendDir))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			assets.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})
}
