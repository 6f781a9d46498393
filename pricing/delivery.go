package pricing

import (
	"strings"
	"time"
)

// Metro pincodes get the fast bucket.
var metroPincodes = map[string]bool{
	"400001": true, // Mumbai
	"110001": true, // Delhi
	"600001": true, // Chennai
	"700001": true, // Kolkata
	"560001": true, // Bengaluru
}

// DeliveryRange is the displayed min/max day window.
type DeliveryRange struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

// deliveryDays maps a postal code to its target day count and display
// range. This is a deterministic lookup, not a carrier query: metro
// pincodes are fast, 8x/9x prefixes are remote and slow, everything
// else (including an absent pincode) falls into the standard bucket.
func deliveryDays(postalCode string) (int, DeliveryRange) {
	switch {
	case metroPincodes[postalCode]:
		return 3, DeliveryRange{MinDays: 2, MaxDays: 3}
	case strings.HasPrefix(postalCode, "8") || strings.HasPrefix(postalCode, "9"):
		return 6, DeliveryRange{MinDays: 5, MaxDays: 7}
	default:
		return 4, DeliveryRange{MinDays: 3, MaxDays: 5}
	}
}

// DeliveryEstimate returns the human-readable target date for an order
// shipped now to the given postal code.
func DeliveryEstimate(postalCode string, now time.Time) string {
	days, _ := deliveryDays(postalCode)
	return now.AddDate(0, 0, days).Format("Mon, 2 Jan")
}

// DeliveryTimeRange returns the min/max day window for display next to
// the estimate.
func DeliveryTimeRange(postalCode string) DeliveryRange {
	_, r := deliveryDays(postalCode)
	return r
}
