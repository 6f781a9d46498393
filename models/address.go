package models

// ShippingAddress collects the delivery destination for an order.
// Required fields: FullName, AddressLine1, City, State, PostalCode.
type ShippingAddress struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "credit-card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

// PaymentSelection is the chosen payment method plus its method-specific
// fields. Sub-fields are presence-checked only; no payment is captured.
type PaymentSelection struct {
	Method     PaymentMethod `json:"method"`
	CardNumber string        `json:"cardNumber,omitempty"`
	CardExpiry string        `json:"cardExpiry,omitempty"`
	CardCVV    string        `json:"cardCvv,omitempty"`
	UPIAddress string        `json:"vpa,omitempty"`
}

// Display returns the human-readable label stored on the order record.
func (p PaymentSelection) Display() string {
	switch p.Method {
	case PaymentCard:
		return "Credit Card"
	case PaymentUPI:
		return "UPI"
	case PaymentCOD:
		return "Cash on Delivery"
	default:
		return string(p.Method)
	}
}
