package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/models"
	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/store"
)

var testSecret = []byte("test-secret")

func newProvider(t *testing.T) (*Provider, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	return NewProvider(st, zap.NewNop(), notify.Discard{}, testSecret), st
}

func TestLoginSeededUser(t *testing.T) {
	p, st := newProvider(t)
	user, token, err := p.Login("user@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, token)

	// The identity record is persisted.
	_, err = st.Get(store.UserKey("1"))
	assert.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	p, _ := newProvider(t)
	_, _, err := p.Login("user@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = p.Login("nobody@example.com", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterNewUser(t *testing.T) {
	p, _ := newProvider(t)
	user, token, err := p.Register("New User", "new@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, token)

	// Can log straight back in.
	again, _, err := p.Login("new@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	p, _ := newProvider(t)
	_, _, err := p.Register("Imposter", "user@example.com", "x")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAppendOrderIsAppendOnly(t *testing.T) {
	p, _ := newProvider(t)
	_, _, err := p.Login("user@example.com", "password")
	require.NoError(t, err)

	first := models.Order{ID: "ORD-1", UserID: "1", Total: 395, CreatedAt: time.Now()}
	second := models.Order{ID: "ORD-2", UserID: "1", Total: 120, CreatedAt: time.Now()}
	require.NoError(t, p.AppendOrder("1", first))
	require.NoError(t, p.AppendOrder("1", second))

	user, err := p.Current("1")
	require.NoError(t, err)
	require.Len(t, user.Orders, 2)
	assert.Equal(t, "ORD-1", user.Orders[0].ID)
	assert.Equal(t, "ORD-2", user.Orders[1].ID)
}

func TestAppendOrderUnknownIdentity(t *testing.T) {
	p, _ := newProvider(t)
	err := p.AppendOrder("999", models.Order{ID: "ORD-X"})
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestLogoutRemovesRecord(t *testing.T) {
	p, st := newProvider(t)
	_, _, err := p.Login("user@example.com", "password")
	require.NoError(t, err)

	require.NoError(t, p.Logout("1"))
	_, err = st.Get(store.UserKey("1"))
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = p.Current("1")
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestOrderHistorySurvivesRelogin(t *testing.T) {
	p, _ := newProvider(t)
	_, _, err := p.Login("user@example.com", "password")
	require.NoError(t, err)
	require.NoError(t, p.AppendOrder("1", models.Order{ID: "ORD-1"}))

	user, _, err := p.Login("user@example.com", "password")
	require.NoError(t, err)
	require.Len(t, user.Orders, 1, "stored record wins over the seeded profile")
}

func TestUpdateOrderStatus(t *testing.T) {
	p, _ := newProvider(t)
	_, _, err := p.Login("user@example.com", "password")
	require.NoError(t, err)
	require.NoError(t, p.AppendOrder("1", models.Order{ID: "ORD-1", Status: models.OrderStatusProcessing}))

	require.NoError(t, p.UpdateOrderStatus("ORD-1", models.OrderStatusShipped))
	user, err := p.Current("1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, user.Orders[0].Status)

	err = p.UpdateOrderStatus("ORD-missing", models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrNoOrder)
}

func TestStatusWriteDoesNotDropConcurrentAppend(t *testing.T) {
	p, _ := newProvider(t)
	_, _, err := p.Login("user@example.com", "password")
	require.NoError(t, err)
	require.NoError(t, p.AppendOrder("1", models.Order{ID: "ORD-1", Status: models.OrderStatusProcessing}))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, p.AppendOrder("1", models.Order{ID: "ORD-2", Status: models.OrderStatusProcessing}))
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, p.UpdateOrderStatus("ORD-1", models.OrderStatusShipped))
	}()
	wg.Wait()

	user, err := p.Current("1")
	require.NoError(t, err)
	require.Len(t, user.Orders, 2, "ORD-2 must survive the status write")
	assert.Equal(t, models.OrderStatusShipped, user.Orders[0].Status)
	assert.Equal(t, "ORD-2", user.Orders[1].ID)
}

func TestAllUsers(t *testing.T) {
	p, _ := newProvider(t)
	_, _, err := p.Login("user@example.com", "password")
	require.NoError(t, err)
	_, _, err = p.Login("admin@example.com", "admin")
	require.NoError(t, err)

	users, err := p.AllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestGuestSession(t *testing.T) {
	session, token, err := NewGuestSession(testSecret)
	require.NoError(t, err)
	assert.Contains(t, session.ID, "guest_")
	assert.NotEmpty(t, token)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}
