package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikhitha4605/storefront-api/auth"
	"github.com/nikhitha4605/storefront-api/middleware"
	"github.com/nikhitha4605/storefront-api/models"
)

// GET /user — the caller's identity record including order history.
func GetUser(identities *auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, guest, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if guest {
			c.JSON(http.StatusOK, gin.H{"id": userID, "role": models.RoleGuest})
			return
		}
		user, err := identities.Current(userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
