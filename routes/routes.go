package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikhitha4605/storefront-api/auth"
	"github.com/nikhitha4605/storefront-api/cart"
	"github.com/nikhitha4605/storefront-api/catalog"
	checkoutControllers "github.com/nikhitha4605/storefront-api/controllers/checkout"
	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/wishlist"
)

// App bundles the wired services the route groups need.
type App struct {
	Carts      *cart.Service
	Catalog    *catalog.Catalog
	Identities *auth.Provider
	Wishlists  *wishlist.Service
	Checkout   *checkoutControllers.Controller
	Hub        *notify.Hub
	JWTSecret  []byte
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, app *App) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, app)

	// Shopper routes (JWT-protected; guests allowed)
	SetupUserRoutes(r, app)

	// Order routes
	SetupOrderRoutes(r, app)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, app)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
