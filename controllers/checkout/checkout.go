package checkoutControllers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nikhitha4605/storefront-api/cart"
	"github.com/nikhitha4605/storefront-api/checkout"
	"github.com/nikhitha4605/storefront-api/middleware"
	"github.com/nikhitha4605/storefront-api/models"
	"github.com/nikhitha4605/storefront-api/pricing"
)

// Controller keeps one open checkout session per owner. A completed or
// abandoned session is replaced on the next Start.
type Controller struct {
	mu           sync.Mutex
	sessions     map[string]*checkout.Session
	orchestrator *checkout.Orchestrator
	carts        *cart.Service
	policy       pricing.Policy
}

func New(orchestrator *checkout.Orchestrator, carts *cart.Service, policy pricing.Policy) *Controller {
	return &Controller{
		sessions:     make(map[string]*checkout.Session),
		orchestrator: orchestrator,
		carts:        carts,
		policy:       policy,
	}
}

type fieldInput struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type placeOrderInput struct {
	ShippingAddress models.ShippingAddress  `json:"shippingAddress" binding:"required"`
	Payment         models.PaymentSelection `json:"payment" binding:"required"`
}

// POST /checkout/start — refuses to open checkout on an empty cart; the
// storefront redirects the shopper back to the products page instead of
// showing a form that can only fail.
func (ctl *Controller) Start(c *gin.Context) {
	owner, guest, ok := middleware.RequestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	eng := ctl.carts.Engine(owner)
	if eng.TotalItems() == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty", "redirect": "/products"})
		return
	}

	sess := checkout.NewSession(owner, guest)
	ctl.mu.Lock()
	ctl.sessions[owner] = sess
	ctl.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"address": sess.Address(),
		"quote":   ctl.policy.Quote(eng.Subtotal()),
	})
}

// PATCH /checkout/field — one named address field at a time; unknown
// field names are rejected.
func (ctl *Controller) UpdateField(c *gin.Context) {
	_, sess, ok := ctl.session(c)
	if !ok {
		return
	}

	var input fieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := sess.SetField(checkout.Field(input.Field), input.Value); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, checkout.ErrNotEditing) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": sess.Address()})
}

// POST /checkout/payment
func (ctl *Controller) SelectPayment(c *gin.Context) {
	_, sess, ok := ctl.session(c)
	if !ok {
		return
	}
	var sel models.PaymentSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := sess.SelectPayment(sel); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethod": sel.Display()})
}

// POST /checkout/submit
func (ctl *Controller) Submit(c *gin.Context) {
	owner, sess, ok := ctl.session(c)
	if !ok {
		return
	}
	ctl.finish(c, owner, sess)
}

// POST /checkout — one-shot: open a session, apply the full payload,
// submit. The body carries the address and payment together.
func (ctl *Controller) PlaceOrder(c *gin.Context) {
	owner, guest, ok := middleware.RequestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var input placeOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	sess := checkout.NewSession(owner, guest)
	if err := sess.SetAddress(input.ShippingAddress); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err := sess.SelectPayment(input.Payment); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	ctl.finish(c, owner, sess)
}

// GET /checkout/quote?postal_code= — current totals plus the delivery
// window, recomputable any number of times with the same result.
func (ctl *Controller) Quote(c *gin.Context) {
	owner, _, ok := middleware.RequestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	postal := c.Query("postal_code")
	eng := ctl.carts.Engine(owner)
	c.JSON(http.StatusOK, gin.H{
		"quote":         ctl.policy.Quote(eng.Subtotal()),
		"deliveryDate":  pricing.DeliveryEstimate(postal, time.Now()),
		"deliveryRange": pricing.DeliveryTimeRange(postal),
	})
}

func (ctl *Controller) finish(c *gin.Context, owner string, sess *checkout.Session) {
	order, err := ctl.orchestrator.Submit(sess, ctl.carts.Engine(owner))
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "validation failed",
				"fields": verr.Fields,
			})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	ctl.mu.Lock()
	delete(ctl.sessions, owner)
	ctl.mu.Unlock()

	c.JSON(http.StatusCreated, order)
}

func (ctl *Controller) session(c *gin.Context) (string, *checkout.Session, bool) {
	owner, _, ok := middleware.RequestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", nil, false
	}
	ctl.mu.Lock()
	sess, exists := ctl.sessions[owner]
	ctl.mu.Unlock()
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open checkout session"})
		return "", nil, false
	}
	return owner, sess, true
}
