package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikhitha4605/storefront-api/catalog"
	"github.com/nikhitha4605/storefront-api/models"
)

// GET /products
func GetProducts(products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := products.List()
		if category := c.Query("category"); category != "" {
			filtered := list[:0:0]
			for _, p := range list {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			list = filtered
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /products/:id
func GetProductByID(products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := products.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// POST /admin/products and PUT /admin/products/:id. Admin catalog edits
// are process-local only; they do not touch the persistent store.
func UpsertProduct(products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if id := c.Param("id"); id != "" {
			p.ID = id
		}
		if err := products.Upsert(p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products.Remove(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
