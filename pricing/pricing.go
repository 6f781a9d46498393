package pricing

import (
	"os"
	"strconv"
)

// Policy holds the fee constants. All methods are pure: identical input
// always yields identical output, so a confirmation page can recompute a
// breakdown it already displayed.
type Policy struct {
	FreeShippingThreshold float64
	FlatShippingFee       float64
	TaxRate               float64
}

// DefaultPolicy: flat 100 shipping below a 500 subtotal, free at or
// above it, 18% tax.
func DefaultPolicy() Policy {
	return Policy{
		FreeShippingThreshold: 500,
		FlatShippingFee:       100,
		TaxRate:               0.18,
	}
}

// PolicyFromEnv starts from the default and applies any overrides set in
// the environment. Unparseable values are ignored.
func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	if v, err := strconv.ParseFloat(os.Getenv("FREE_SHIPPING_THRESHOLD"), 64); err == nil {
		p.FreeShippingThreshold = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("SHIPPING_FLAT_FEE"), 64); err == nil {
		p.FlatShippingFee = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("TAX_RATE"), 64); err == nil {
		p.TaxRate = v
	}
	return p
}

// Shipping is the flat fee below the free-shipping threshold and zero at
// or above it.
func (p Policy) Shipping(subtotal float64) float64 {
	if subtotal >= p.FreeShippingThreshold {
		return 0
	}
	return p.FlatShippingFee
}

func (p Policy) Tax(subtotal float64) float64 {
	return subtotal * p.TaxRate
}

func (p Policy) Total(subtotal float64) float64 {
	return subtotal + p.Shipping(subtotal) + p.Tax(subtotal)
}

// Breakdown bundles the derived charges for display.
type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func (p Policy) Quote(subtotal float64) Breakdown {
	return Breakdown{
		Subtotal: subtotal,
		Shipping: p.Shipping(subtotal),
		Tax:      p.Tax(subtotal),
		Total:    p.Total(subtotal),
	}
}
