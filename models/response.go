package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ValidationErrorResponse carries a field-keyed error map so the client can
// re-render the failing form inline.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}

// CartView is the cart endpoint payload: the stored lines plus the pricing
// projection for the active ones.
type CartView struct {
	Lines   []CartLine      `json:"lines"`
	Count   int             `json:"count"`
	Pricing PricingSnapshot `json:"pricing"`
}

// CheckoutView reports where the session's checkout flow stands.
type CheckoutView struct {
	Step    CheckoutStep    `json:"step"`
	Draft   CheckoutDraft   `json:"draft"`
	Pricing PricingSnapshot `json:"pricing"`
}
