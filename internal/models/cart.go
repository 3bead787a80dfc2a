package models

// CartItem is a menu entry placed in the cart, augmented with the ordered
// quantity and free-text observations ("no onions"). Two lines with the same
// menu but different observations are distinct.
type CartItem struct {
	Menu
	Quantity     int    `json:"quantity"`
	Observations string `json:"observations,omitempty"`
}

// LineTotal returns price times quantity for this line.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
