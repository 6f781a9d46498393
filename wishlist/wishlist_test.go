package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/models"
	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/store"
)

var mat = models.Product{ID: "8", Name: "Yoga Mat", Price: 49.99, Category: "fitness", InStock: true}

func TestAddIsDeduplicated(t *testing.T) {
	s := NewService(store.NewMemory(), zap.NewNop(), notify.Discard{})
	s.Add("u1", mat)
	s.Add("u1", mat)
	assert.Len(t, s.List("u1"), 1)
}

func TestRemove(t *testing.T) {
	s := NewService(store.NewMemory(), zap.NewNop(), notify.Discard{})
	s.Add("u1", mat)
	s.Remove("u1", mat.ID)
	assert.Empty(t, s.List("u1"))

	// Absent removal is a no-op.
	s.Remove("u1", mat.ID)
	assert.Empty(t, s.List("u1"))
}

func TestListSurvivesReload(t *testing.T) {
	st := store.NewMemory()
	s := NewService(st, zap.NewNop(), notify.Discard{})
	s.Add("u1", mat)

	reloaded := NewService(st, zap.NewNop(), notify.Discard{})
	entries := reloaded.List("u1")
	require.Len(t, entries, 1)
	assert.Equal(t, mat.ID, entries[0].Product.ID)
	assert.False(t, entries[0].AddedAt.IsZero())
}

func TestOwnersAreIsolated(t *testing.T) {
	s := NewService(store.NewMemory(), zap.NewNop(), notify.Discard{})
	s.Add("u1", mat)
	assert.Empty(t, s.List("u2"))
}
