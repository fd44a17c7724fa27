package models

// DefaultSize marks a line whose product has no meaningful size variant.
const DefaultSize = "default"

// CartLine is one purchasable selection in a cart. UnitPrice is fixed at the
// moment the line is added; later catalog price changes do not touch it.
type CartLine struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	Saved     bool    `json:"saved"`
}

// Matches reports whether the line has the given (id, name, size) natural key.
// Two lines with equal keys are the same line and must be merged, not duplicated.
func (l CartLine) Matches(id, name, size string) bool {
	return l.ID == id && l.Name == name && l.Size == size
}

// LineTotal is unit price times quantity for this line.
func (l CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
