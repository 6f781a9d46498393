package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/cart"
	"github.com/nikhitha4605/storefront-api/metrics"
	"github.com/nikhitha4605/storefront-api/models"
	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/pricing"
)

// ValidationError carries field-keyed messages back to the form. A
// rejected submission has performed no side effects at all.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	return "checkout: validation failed: " + strings.Join(keys, ", ")
}

// HistorySink is the append hook the identity provider exposes. Appends
// for guests are skipped by the orchestrator, not the sink.
type HistorySink interface {
	AppendOrder(userID string, order models.Order) error
}

// Orchestrator turns a cart plus shipping and payment input into an
// immutable order. Clock and id generation are injectable for tests.
type Orchestrator struct {
	policy    pricing.Policy
	history   HistorySink
	log       *zap.Logger
	notifier  notify.Notifier
	broadcast func(models.Order)
	now       func() time.Time
	newID     func() string
}

type Option func(*Orchestrator)

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(o *Orchestrator) { o.newID = newID }
}

// WithBroadcast wires the live order feed; called once per placed order.
func WithBroadcast(fn func(models.Order)) Option {
	return func(o *Orchestrator) { o.broadcast = fn }
}

func NewOrchestrator(policy pricing.Policy, history HistorySink, log *zap.Logger, notifier notify.Notifier, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		policy:   policy,
		history:  history,
		log:      log,
		notifier: notifier,
		now:      time.Now,
	}
	o.newID = func() string { return NewOrderID(o.now()) }
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewOrderID builds a human-displayable, collision-resistant order id.
func NewOrderID(now time.Time) string {
	return "ORD-" + now.Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// Submit runs the Editing -> Submitting transition. Validation is
// all-or-nothing: any failure returns the session to Editing with
// field-level errors and zero side effects. On success the side effects
// run in order — append to history (skipped for guests), clear the cart,
// complete the session — and the frozen order is returned.
func (o *Orchestrator) Submit(s *Session, eng *cart.Engine) (*models.Order, error) {
	s.mu.Lock()
	if s.state != StateEditing {
		s.mu.Unlock()
		return nil, ErrNotEditing
	}
	s.state = StateSubmitting
	address := s.address
	payment := s.payment
	s.mu.Unlock()

	reject := func(verr *ValidationError) (*models.Order, error) {
		s.mu.Lock()
		s.state = StateEditing
		s.mu.Unlock()
		metrics.CheckoutRejections.Inc()
		o.notifier.Notify(notify.KindError, rejectMessage(verr))
		return nil, verr
	}

	// Totals come from the cart as it stands now, not from any snapshot
	// taken when checkout was entered.
	lines := eng.Lines()
	if verr := validate(lines, address, payment); verr != nil {
		return reject(verr)
	}

	subtotal := 0.0
	items := make([]models.OrderLine, len(lines))
	for i, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
		items[i] = models.OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			ImageURL:  l.ImageURL,
		}
	}

	now := o.now()
	quote := o.policy.Quote(subtotal)
	userID := s.owner
	if s.guest {
		userID = models.GuestUserID
	}
	order := models.Order{
		ID:              o.newID(),
		UserID:          userID,
		Items:           items,
		Subtotal:        quote.Subtotal,
		ShippingCost:    quote.Shipping,
		Tax:             quote.Tax,
		Total:           quote.Total,
		Status:          models.OrderStatusProcessing,
		ShippingAddress: address,
		PaymentMethod:   payment.Display(),
		CreatedAt:       now,
		DeliveryDate:    pricing.DeliveryEstimate(address.PostalCode, now),
	}

	if !s.guest {
		if err := o.history.AppendOrder(s.owner, order); err != nil {
			// The order still exists for the confirmation screen; only
			// its history entry is lost. Surface and carry on.
			o.log.Error("order history append failed",
				zap.String("order_id", order.ID),
				zap.String("user_id", s.owner),
				zap.Error(err))
		}
	}

	eng.Clear()

	s.mu.Lock()
	s.state = StateCompleted
	s.order = &order
	s.mu.Unlock()

	metrics.OrdersPlaced.Inc()
	o.notifier.Notify(notify.KindSuccess, fmt.Sprintf("Order %s placed", order.ID))
	if o.broadcast != nil {
		o.broadcast(order)
	}
	return &order, nil
}

// rejectMessage picks the toast for a failed submission. Missing
// address fields dominate; otherwise report the empty cart or the
// payment selection.
func rejectMessage(v *ValidationError) string {
	for f := range v.Fields {
		if f != "cart" && f != "payment" {
			return "Please fill all required shipping information"
		}
	}
	if _, ok := v.Fields["cart"]; ok {
		return "Your cart is empty"
	}
	return "Please select a valid payment method"
}

// validate checks the cart, the address, and the payment selection in
// one pass so the caller gets every problem at once.
func validate(lines []models.CartLine, address models.ShippingAddress, payment *models.PaymentSelection) *ValidationError {
	fields := make(map[string]string)

	if len(lines) == 0 {
		fields["cart"] = "cart is empty"
	}
	for _, f := range requiredFields {
		if strings.TrimSpace(addressField(address, f)) == "" {
			fields[string(f)] = "required"
		}
	}
	switch {
	case payment == nil:
		fields["payment"] = "select a payment method"
	case payment.Method == models.PaymentCard:
		if payment.CardNumber == "" || payment.CardExpiry == "" || payment.CardCVV == "" {
			fields["payment"] = "card number, expiry and CVV are required"
		}
	case payment.Method == models.PaymentUPI:
		if payment.UPIAddress == "" {
			fields["payment"] = "UPI address is required"
		}
	case payment.Method == models.PaymentCOD:
	default:
		fields["payment"] = "unknown payment method"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func addressField(a models.ShippingAddress, f Field) string {
	switch f {
	case FieldFullName:
		return a.FullName
	case FieldAddressLine1:
		return a.AddressLine1
	case FieldAddressLine2:
		return a.AddressLine2
	case FieldCity:
		return a.City
	case FieldState:
		return a.State
	case FieldPostalCode:
		return a.PostalCode
	case FieldCountry:
		return a.Country
	}
	return ""
}
