package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/nikhitha4605/storefront-api/controllers/order"
	"github.com/nikhitha4605/storefront-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, app *App) {
	orders := r.Group("/orders")
	{
		// The caller's own order history
		orders.GET("/", middleware.ValidateToken, orderControllers.GetMyOrders(app.Identities))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", app.Hub.Handler)
	}
}
