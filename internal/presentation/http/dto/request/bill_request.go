package request

// BillItemRequest represents one line of a bill creation request
type BillItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// CreateBillRequest represents a bill creation request
type CreateBillRequest struct {
	CustomerID string            `json:"customerId"`
	Items      []BillItemRequest `json:"items"`
	Total      float64           `json:"total"`
	PaidAmount float64           `json:"paidAmount"`
}

// UpdatePaymentRequest carries the new absolute paid total for a bill
type UpdatePaymentRequest struct {
	PaidAmount float64 `json:"paidAmount"`
}
