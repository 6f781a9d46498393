package store

import "errors"

// ErrNotFound is returned by Get for an absent key. Callers treat an
// absent key as "use the default value".
var ErrNotFound = errors.New("store: key not found")

// Store is the keyed durability port. Values are opaque bytes (JSON
// everywhere in this codebase). The local pebble store and the
// Postgres-backed store both satisfy it; the cart and identity layers
// do not care which is wired in.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
	Close() error
}

// Key layout. One key per cart owner, one per identity, one per
// wishlist owner. Only the cart engine writes cart keys and only the
// identity provider writes user keys.
func CartKey(owner string) string     { return "cart:" + owner }
func UserKey(id string) string        { return "user:" + id }
func WishlistKey(owner string) string { return "wishlist:" + owner }

const UserKeyPrefix = "user:"
