package cart

// AddItemRequest adds one unit of an item to the cart.
type AddItemRequest struct {
	Name      string `json:"name" validate:"required"`
	UnitPrice int    `json:"unit_price" validate:"gte=0"`
}

// SetQuantityRequest overwrites an item's quantity. Values at or below zero
// remove the line.
type SetQuantityRequest struct {
	UnitPrice int `json:"unit_price" validate:"gte=0"`
	Quantity  int `json:"quantity"`
}
