package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/nikhitha4605/storefront-api/controllers/cart"
	productControllers "github.com/nikhitha4605/storefront-api/controllers/product"
	userControllers "github.com/nikhitha4605/storefront-api/controllers/user"
	wishlistControllers "github.com/nikhitha4605/storefront-api/controllers/wishlist"
	"github.com/nikhitha4605/storefront-api/middleware"
)

// SetupUserRoutes registers the shopper-facing endpoints. Product
// browsing is public; cart, wishlist and checkout need a token (guest
// tokens count).
func SetupUserRoutes(r *gin.Engine, app *App) {
	// Browse
	r.GET("/products", productControllers.GetProducts(app.Catalog))
	r.GET("/products/:id", productControllers.GetProductByID(app.Catalog))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(app.Identities))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(app.Carts))
			cartGroup.POST("/", cartControllers.AddToCart(app.Carts, app.Catalog))
			cartGroup.PUT("/", cartControllers.UpdateQuantity(app.Carts))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveItem(app.Carts))
			cartGroup.DELETE("/", cartControllers.ClearCart(app.Carts))
		}

		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(app.Wishlists))
			wishlistGroup.POST("/", wishlistControllers.AddToWishlist(app.Wishlists, app.Catalog))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(app.Wishlists))
		}
	}

	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ValidateToken)
	{
		checkoutGroup.POST("", app.Checkout.PlaceOrder)
		checkoutGroup.POST("/start", app.Checkout.Start)
		checkoutGroup.PATCH("/field", app.Checkout.UpdateField)
		checkoutGroup.POST("/payment", app.Checkout.SelectPayment)
		checkoutGroup.POST("/submit", app.Checkout.Submit)
		checkoutGroup.GET("/quote", app.Checkout.Quote)
	}
}
