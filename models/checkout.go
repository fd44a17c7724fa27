package models

// CheckoutStep identifies a position in the linear checkout flow.
type CheckoutStep string

const (
	StepBilling  CheckoutStep = "billing"
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
	StepReview   CheckoutStep = "review"
)

// PaymentDetails carries the raw payment form. It is validated and charged at
// the payment step; only the masked card and cardholder name are retained in
// the draft afterwards.
type PaymentDetails struct {
	CardNumber string `json:"card_number" validate:"required,card"`
	ExpiryDate string `json:"expiry_date" validate:"required,expiry"`
	CVV        string `json:"cvv" validate:"required,cvv"`
	NameOnCard string `json:"name_on_card" validate:"required"`
}

// CheckoutDraft is the persisted state of a session's checkout flow: the
// current step, the forms accepted so far and the coupon currently applied.
type CheckoutDraft struct {
	Step         CheckoutStep    `json:"step"`
	Billing      BillingDetails  `json:"billing"`
	Shipping     ShippingDetails `json:"shipping"`
	CardLast4    string          `json:"card_last4,omitempty"`
	NameOnCard   string          `json:"name_on_card,omitempty"`
	CouponCode   string          `json:"coupon_code,omitempty"`
	DiscountRate float64         `json:"discount_rate"`
}

// NewCheckoutDraft returns a draft positioned at the first step.
func NewCheckoutDraft() *CheckoutDraft {
	return &CheckoutDraft{Step: StepBilling}
}
