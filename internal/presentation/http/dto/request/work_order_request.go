package request

import "time"

// CreateWorkOrderRequest represents a work order creation request
type CreateWorkOrderRequest struct {
	CustomerID     string    `json:"customerId"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phoneNumber"`
	SubmissionDate time.Time `json:"submissionDate"`
	DeliveryDate   time.Time `json:"deliveryDate"`
	Address        string    `json:"address"`
	Designs        []string  `json:"designs"`
	WorkType       string    `json:"workType"`
	StaffName      string    `json:"staffName"`
	QuotedPrice    float64   `json:"quotedPrice"`
	WorkerPrice    *float64  `json:"workerPrice"`
	ClientPrice    *float64  `json:"clientPrice"`
}

// UpdateWorkOrderRequest represents a work order update request
type UpdateWorkOrderRequest struct {
	Name           *string    `json:"name"`
	PhoneNumber    *string    `json:"phoneNumber"`
	SubmissionDate *time.Time `json:"submissionDate"`
	DeliveryDate   *time.Time `json:"deliveryDate"`
	Address        *string    `json:"address"`
	Designs        []string   `json:"designs"`
	WorkType       *string    `json:"workType"`
	StaffName      *string    `json:"staffName"`
	Status         *string    `json:"status"`
	QuotedPrice    *float64   `json:"quotedPrice"`
	WorkerPrice    *float64   `json:"workerPrice"`
	ClientPrice    *float64   `json:"clientPrice"`
}
