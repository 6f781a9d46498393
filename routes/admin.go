package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/nikhitha4605/storefront-api/controllers/order"
	productControllers "github.com/nikhitha4605/storefront-api/controllers/product"
	"github.com/nikhitha4605/storefront-api/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints behind the API key.
func SetupAdminRoutes(r *gin.Engine, app *App) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/orders", orderControllers.GetAllOrders(app.Identities))
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(app.Identities))
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatus(app.Identities))

		adminGroup.POST("/products", productControllers.UpsertProduct(app.Catalog))
		adminGroup.PUT("/products/:id", productControllers.UpsertProduct(app.Catalog))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(app.Catalog))
	}
}
