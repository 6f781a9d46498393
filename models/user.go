package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// User is the persisted identity record. Orders is its append-only order
// history; past orders are never updated or removed through the user path.
type User struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Role   Role    `json:"role"`
	Orders []Order `json:"orders"`
}

// GuestSession is a short-lived anonymous identity. Guests can shop and
// check out but their orders are not retained anywhere.
type GuestSession struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// WishlistEntry records when a product was saved for later.
type WishlistEntry struct {
	Product Product   `json:"product"`
	AddedAt time.Time `json:"addedAt"`
}
