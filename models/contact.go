package models

// ContactMessage mirrors the storefront contact form. The same shape is
// persisted as a per-session draft so a visitor can leave and come back.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
