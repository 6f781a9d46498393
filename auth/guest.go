package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/nikhitha4605/storefront-api/models"
)

const guestTTL = 24 * time.Hour

// NewGuestSession mints an anonymous identity with a random id and a
// short-lived token. Guests get a cart but no persisted order history.
func NewGuestSession(secret []byte) (models.GuestSession, string, error) {
	session := models.GuestSession{
		ID:        "guest_" + randomHex(16),
		ExpiresAt: time.Now().Add(guestTTL),
	}
	token, err := IssueToken(secret, session.ID, models.RoleGuest)
	if err != nil {
		return models.GuestSession{}, "", err
	}
	return session, token, nil
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
