package checkout

import (
	"errors"
	"sync"

	"github.com/nikhitha4605/storefront-api/models"
)

// State of a checkout session. Editing collects input; Submitting is the
// atomic validate-and-build window; Completed means an order exists.
// A rejected submission returns the session to Editing.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateCompleted
)

// Field names the known shipping address inputs. Updates to any other
// key are rejected rather than silently accepted.
type Field string

const (
	FieldFullName     Field = "fullName"
	FieldAddressLine1 Field = "addressLine1"
	FieldAddressLine2 Field = "addressLine2"
	FieldCity         Field = "city"
	FieldState        Field = "state"
	FieldPostalCode   Field = "postalCode"
	FieldCountry      Field = "country"
)

// requiredFields are the address fields that must be non-blank at submit.
var requiredFields = []Field{
	FieldFullName, FieldAddressLine1, FieldCity, FieldState, FieldPostalCode,
}

var (
	ErrUnknownField = errors.New("checkout: unknown address field")
	ErrNotEditing   = errors.New("checkout: session is not accepting input")
)

// Session is one shopper's in-progress checkout.
type Session struct {
	mu      sync.Mutex
	state   State
	owner   string
	guest   bool
	address models.ShippingAddress
	payment *models.PaymentSelection
	order   *models.Order
}

// NewSession opens a checkout in the Editing state. The country defaults
// to the store's home market.
func NewSession(owner string, guest bool) *Session {
	return &Session{
		owner:   owner,
		guest:   guest,
		address: models.ShippingAddress{Country: "India"},
	}
}

func (s *Session) Owner() string { return s.owner }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetField applies one named address change. Unknown fields and sessions
// outside Editing are rejected.
func (s *Session) SetField(f Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return ErrNotEditing
	}
	switch f {
	case FieldFullName:
		s.address.FullName = value
	case FieldAddressLine1:
		s.address.AddressLine1 = value
	case FieldAddressLine2:
		s.address.AddressLine2 = value
	case FieldCity:
		s.address.City = value
	case FieldState:
		s.address.State = value
	case FieldPostalCode:
		s.address.PostalCode = value
	case FieldCountry:
		s.address.Country = value
	default:
		return ErrUnknownField
	}
	return nil
}

// SetAddress replaces the whole draft address at once.
func (s *Session) SetAddress(addr models.ShippingAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return ErrNotEditing
	}
	s.address = addr
	return nil
}

// SelectPayment records the chosen payment method.
func (s *Session) SelectPayment(sel models.PaymentSelection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return ErrNotEditing
	}
	s.payment = &sel
	return nil
}

// Address returns the current draft.
func (s *Session) Address() models.ShippingAddress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}

// Order returns the placed order once the session is Completed.
func (s *Session) Order() *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}
