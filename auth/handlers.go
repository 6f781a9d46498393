package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikhitha4605/storefront-api/cart"
	"github.com/nikhitha4605/storefront-api/middleware"
)

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func LoginHandler(p *Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		user, token, err := p.Login(input.Email, input.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// POST /auth/register
func RegisterHandler(p *Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		user, token, err := p.Register(input.Name, input.Email, input.Password)
		if err != nil {
			if errors.Is(err, ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
	}
}

// POST /auth/logout — removes the persisted identity record and forgets
// the cached cart engine so the next login reloads from the store.
func LogoutHandler(p *Provider, carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := p.Logout(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
		carts.Drop(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// POST /auth/guest — mints an anonymous session so a visitor can shop
// without an account.
func CreateGuestHandler(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, token, err := NewGuestSession(secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"guest_id":   session.ID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}
