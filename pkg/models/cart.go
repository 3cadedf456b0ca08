package models

// CartItem is a product selection plus quantity. Uniqueness key is the
// product ID; adding an already-present product increments the quantity
// instead of duplicating the line.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (ci *CartItem) Subtotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}

// CartView is the serialized shape of a session cart, with the derived
// aggregates recomputed at render time.
type CartView struct {
	SessionID  string     `json:"session_id"`
	Items      []CartItem `json:"items"`
	ItemCount  int        `json:"item_count"`
	TotalPrice float64    `json:"total_price"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

// Quantity 0 removes the line; the form layer clamps everything else to 1+.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}
