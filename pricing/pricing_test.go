package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShippingBelowThreshold(t *testing.T) {
	p := DefaultPolicy()
	assert.InDelta(t, 100, p.Shipping(250), 1e-9)
	assert.InDelta(t, 100, p.Shipping(499.99), 1e-9)
}

func TestShippingFreeAtOrAboveThreshold(t *testing.T) {
	p := DefaultPolicy()
	assert.Zero(t, p.Shipping(500))
	assert.Zero(t, p.Shipping(1200))
}

func TestQuoteBreakdown(t *testing.T) {
	// 2 x 100 + 1 x 50 = 250; below the free-shipping threshold with 18% tax.
	p := DefaultPolicy()
	q := p.Quote(250)
	assert.InDelta(t, 250, q.Subtotal, 1e-9)
	assert.InDelta(t, 100, q.Shipping, 1e-9)
	assert.InDelta(t, 45, q.Tax, 1e-9)
	assert.InDelta(t, 395, q.Total, 1e-9)
}

func TestQuoteIsDeterministic(t *testing.T) {
	p := DefaultPolicy()
	for i := 0; i < 5; i++ {
		assert.Equal(t, p.Quote(333.33), p.Quote(333.33))
	}
}

func TestDeliveryDays(t *testing.T) {
	tests := []struct {
		name   string
		pin    string
		days   int
		window DeliveryRange
	}{
		{"metro mumbai", "400001", 3, DeliveryRange{2, 3}},
		{"metro delhi", "110001", 3, DeliveryRange{2, 3}},
		{"remote 8 prefix", "812345", 6, DeliveryRange{5, 7}},
		{"remote 9 prefix", "900000", 6, DeliveryRange{5, 7}},
		{"standard", "500032", 4, DeliveryRange{3, 5}},
		{"absent pincode", "", 4, DeliveryRange{3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, window := deliveryDays(tt.pin)
			assert.Equal(t, tt.days, days)
			assert.Equal(t, tt.window, window)
		})
	}
}

func TestDeliveryEstimateFormat(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC) // a Monday
	// Standard bucket: 4 days out is Friday 14 March.
	assert.Equal(t, "Fri, 14 Mar", DeliveryEstimate("500032", now))
	// Metro: 3 days out.
	assert.Equal(t, "Thu, 13 Mar", DeliveryEstimate("400001", now))
}

func TestDeliveryEstimateDeterministic(t *testing.T) {
	now := time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, DeliveryEstimate("812345", now), DeliveryEstimate("812345", now))
}
