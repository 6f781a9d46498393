package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikhitha4605/storefront-api/catalog"
	"github.com/nikhitha4605/storefront-api/middleware"
	"github.com/nikhitha4605/storefront-api/wishlist"
)

type AddInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(lists *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, _, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, lists.List(owner))
	}
}

// POST /user/wishlist
func AddToWishlist(lists *wishlist.Service, products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, _, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var input AddInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product, err := products.Get(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		lists.Add(owner, product)
		c.JSON(http.StatusOK, lists.List(owner))
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist(lists *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, _, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		lists.Remove(owner, c.Param("product_id"))
		c.JSON(http.StatusOK, lists.List(owner))
	}
}
