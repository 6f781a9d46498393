package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikhitha4605/storefront-api/cart"
	"github.com/nikhitha4605/storefront-api/catalog"
	"github.com/nikhitha4605/storefront-api/middleware"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// GET /user/cart
func GetCart(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, _, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, carts.Engine(owner).Snapshot())
	}
}

// POST /user/cart
func AddToCart(carts *cart.Service, products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, _, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		product, err := products.Get(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		eng := carts.Engine(owner)
		if err := eng.AddToCart(product, input.Quantity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, eng.Snapshot())
	}
}

// PUT /user/cart
func UpdateQuantity(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, _, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		eng := carts.Engine(owner)
		eng.UpdateQuantity(input.ProductID, input.Quantity)
		c.JSON(http.StatusOK, eng.Snapshot())
	}
}

// DELETE /user/cart/:product_id
func RemoveItem(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, _, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		eng := carts.Engine(owner)
		eng.RemoveFromCart(c.Param("product_id"))
		c.JSON(http.StatusOK, eng.Snapshot())
	}
}

// DELETE /user/cart
func ClearCart(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, _, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		eng := carts.Engine(owner)
		eng.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
