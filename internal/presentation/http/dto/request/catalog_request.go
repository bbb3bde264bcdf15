package request

// CreateItemRequest represents a catalog item creation request
type CreateItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UpdateItemRequest represents a catalog item update request; the item is
// addressed by its id in the body.
type UpdateItemRequest struct {
	ItemID string   `json:"itemId"`
	Name   *string  `json:"name"`
	Price  *float64 `json:"price"`
}
