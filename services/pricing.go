package services

import (
	"math"
	"nutcha-shop/models"
	"strings"
)

// Pricing rules. Tax applies to the subtotal before discount and shipping;
// shipping is flat below the free-shipping threshold and zero otherwise
// (an empty cart also ships free).
const (
	TaxRate         = 0.10
	ShippingFlat    = 5.00
	FreeShippingMin = 50.00

	couponCode     = "matcha10"
	couponDiscount = 0.10
)

// CouponRate is a pure function of the code: the recognized coupon yields its
// discount rate, anything else yields zero. Comparison is trimmed and
// case-insensitive. Rates do not stack.
func CouponRate(code string) float64 {
	if strings.EqualFold(strings.TrimSpace(code), couponCode) {
		return couponDiscount
	}
	return 0
}

// ComputePricing projects the active (non-saved) lines and a discount rate
// into a total breakdown. It is deterministic and side-effect free; callers
// recompute it on every read instead of caching.
func ComputePricing(lines []models.CartLine, discountRate float64) models.PricingSnapshot {
	var subtotal float64
	for _, line := range lines {
		if line.Saved {
			continue
		}
		subtotal += line.LineTotal()
	}
	subtotal = round2(subtotal)

	shipping := 0.0
	if subtotal > 0 && subtotal < FreeShippingMin {
		shipping = ShippingFlat
	}

	discount := round2(subtotal * discountRate)
	tax := round2(subtotal * TaxRate)

	return models.PricingSnapshot{
		Subtotal:       subtotal,
		DiscountRate:   discountRate,
		DiscountAmount: discount,
		Tax:            tax,
		ShippingCost:   shipping,
		Total:          round2(subtotal + tax + shipping - discount),
	}
}

// ActiveLines filters out saved-for-later lines.
func ActiveLines(lines []models.CartLine) []models.CartLine {
	active := []models.CartLine{}
	for _, line := range lines {
		if !line.Saved {
			active = append(active, line)
		}
	}
	return active
}

// CountItems sums the quantities of active lines (the cart badge number).
func CountItems(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		if !line.Saved {
			count += line.Quantity
		}
	}
	return count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
