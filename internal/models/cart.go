package models

// CartItem is a line in a user's cart before checkout. Quantities are
// adjusted freely; prices are resolved from the catalog at checkout.
type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}
