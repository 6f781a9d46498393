package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nikhitha4605/storefront-api/models"
)

const tokenTTL = 24 * time.Hour

// IssueToken signs a session token carrying the user id and role.
func IssueToken(secret []byte, userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
