package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhitha4605/storefront-api/auth"
	"github.com/nikhitha4605/storefront-api/middleware"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, app *App) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(app.Identities))
		authGroup.POST("/register", auth.RegisterHandler(app.Identities))
		authGroup.POST("/guest", auth.CreateGuestHandler(app.JWTSecret))
		authGroup.POST("/logout", middleware.ValidateToken, auth.LogoutHandler(app.Identities, app.Carts))
	}
}
