package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/auth"
	"github.com/nikhitha4605/storefront-api/cart"
	"github.com/nikhitha4605/storefront-api/catalog"
	"github.com/nikhitha4605/storefront-api/checkout"
	checkoutControllers "github.com/nikhitha4605/storefront-api/controllers/checkout"
	"github.com/nikhitha4605/storefront-api/models"
	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/pricing"
	"github.com/nikhitha4605/storefront-api/store"
	"github.com/nikhitha4605/storefront-api/wishlist"
)

const testSecret = "routes-test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *auth.Provider) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("ADMIN_API_KEY", "admin-key")
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	st := store.NewMemory()
	products := catalog.New(catalog.Default())
	notifier := notify.Discard{}

	carts := cart.NewService(st, log, notifier)
	identities := auth.NewProvider(st, log, notifier, []byte(testSecret))
	wishlists := wishlist.NewService(st, log, notifier)
	policy := pricing.DefaultPolicy()
	orchestrator := checkout.NewOrchestrator(policy, identities, log, notifier)

	r := gin.New()
	SetupRoutes(r, &App{
		Carts:      carts,
		Catalog:    products,
		Identities: identities,
		Wishlists:  wishlists,
		Checkout:   checkoutControllers.New(orchestrator, carts, policy),
		Hub:        notify.NewHub(log),
		JWTSecret:  []byte(testSecret),
	})
	return r, identities
}

func do(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/auth/login", "", `{"email":"user@example.com","password":"password"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestCartEndpointsRequireToken(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(t, r, http.MethodGet, "/user/cart/", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductsArePublic(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(t, r, http.MethodGet, "/products", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.NotEmpty(t, products)
}

func TestCheckoutStartRefusesEmptyCart(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := do(t, r, http.MethodPost, "/checkout/start", token, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "redirect")
}

func TestShoppingFlow(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	// Add product 1 twice: one line, quantity 3.
	w := do(t, r, http.MethodPost, "/user/cart/", token, `{"product_id":"1","quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/user/cart/", token, `{"product_id":"1","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var snap cart.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 3, snap.TotalItems)

	// One-shot checkout.
	body := `{
		"shippingAddress": {
			"fullName": "Regular User",
			"addressLine1": "42 MG Road",
			"city": "Bengaluru",
			"state": "Karnataka",
			"postalCode": "560001",
			"country": "India"
		},
		"payment": {"method": "cod"}
	}`
	w = do(t, r, http.MethodPost, "/checkout", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, "Cash on Delivery", order.PaymentMethod)

	// Cart is now empty.
	w = do(t, r, http.MethodGet, "/user/cart/", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Zero(t, snap.TotalItems)

	// History gained exactly one entry.
	w = do(t, r, http.MethodGet, "/orders/", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCheckoutValidationErrorsAreFieldKeyed(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := do(t, r, http.MethodPost, "/user/cart/", token, `{"product_id":"2","quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := `{
		"shippingAddress": {"fullName": "Regular User"},
		"payment": {"method": "cod"}
	}`
	w = do(t, r, http.MethodPost, "/checkout", token, body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "city")
	assert.Contains(t, resp.Fields, "postalCode")

	// Cart untouched.
	w = do(t, r, http.MethodGet, "/user/cart/", token, "")
	var snap cart.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 1, snap.TotalItems)
}

func TestGuestCanShopButHistoryIsNotRetained(t *testing.T) {
	r, identities := newTestServer(t)

	w := do(t, r, http.MethodPost, "/auth/guest", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var guest struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guest))

	w = do(t, r, http.MethodPost, "/user/cart/", guest.Token, `{"product_id":"3","quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := `{
		"shippingAddress": {
			"fullName": "Guest Shopper",
			"addressLine1": "1 Anywhere Lane",
			"city": "Pune",
			"state": "Maharashtra",
			"postalCode": "411001",
			"country": "India"
		},
		"payment": {"method": "upi", "vpa": "guest@upi"}
	}`
	w = do(t, r, http.MethodPost, "/checkout", guest.Token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, models.GuestUserID, order.UserID)

	users, err := identities.AllUsers()
	require.NoError(t, err)
	assert.Empty(t, users, "no identity record was created for the guest")
}

func TestAdminEndpointsNeedAPIKey(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, http.MethodGet, "/admin/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("X-API-KEY", "admin-key")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOrderStatusUpdateIsPersisted(t *testing.T) {
	r, identities := newTestServer(t)
	token := loginToken(t, r)

	w := do(t, r, http.MethodPost, "/user/cart/", token, `{"product_id":"1","quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := `{
		"shippingAddress": {
			"fullName": "Regular User",
			"addressLine1": "42 MG Road",
			"city": "Bengaluru",
			"state": "Karnataka",
			"postalCode": "560001",
			"country": "India"
		},
		"payment": {"method": "cod"}
	}`
	w = do(t, r, http.MethodPost, "/checkout", token, body)
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	req := httptest.NewRequest(http.MethodPut, "/admin/orders/"+order.ID+"/status",
		strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "admin-key")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	user, err := identities.Current("1")
	require.NoError(t, err)
	require.Len(t, user.Orders, 1)
	assert.Equal(t, models.OrderStatusShipped, user.Orders[0].Status)
}
