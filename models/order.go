package models

import "time"

// PricingSnapshot is the derived total breakdown for the active cart lines.
// It is recomputed on every read and only ever stored once frozen into an Order.
type PricingSnapshot struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountRate   float64 `json:"discount_rate"`
	DiscountAmount float64 `json:"discount_amount"`
	Tax            float64 `json:"tax"`
	ShippingCost   float64 `json:"shipping_cost"`
	Total          float64 `json:"total"`
}

// BillingDetails requires presence only; the email gets no format check at
// this step (unlike the contact form, which does — an intentional asymmetry).
type BillingDetails struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

type ShippingDetails struct {
	FullName   string `json:"full_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required,postal"`
}

// Order is the immutable record finalized when checkout completes. It is
// handed to the confirmation view and the receipt generator and never mutated.
type Order struct {
	OrderNumber       string          `json:"order_number"`
	Lines             []CartLine      `json:"lines"`
	Billing           BillingDetails  `json:"billing"`
	Shipping          ShippingDetails `json:"shipping"`
	Pricing           PricingSnapshot `json:"pricing"`
	EstimatedDelivery string          `json:"estimated_delivery"`
	PlacedAt          time.Time       `json:"placed_at"`
}

// OrderSummary is a row of the durable order history (Postgres side).
type OrderSummary struct {
	ID          int       `json:"id"`
	OrderNumber string    `json:"order_number"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Subtotal    float64   `json:"subtotal"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}
