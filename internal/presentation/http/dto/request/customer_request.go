package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name          string  `json:"name"`
	PhoneNumber   string  `json:"phoneNumber"`
	Address       string  `json:"address"`
	Town          *string `json:"town"`
	District      string  `json:"district"`
	State         string  `json:"state"`
	MaritalStatus string  `json:"maritalStatus"`
	Favorite      bool    `json:"favorite"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name          *string `json:"name"`
	PhoneNumber   *string `json:"phoneNumber"`
	Address       *string `json:"address"`
	Town          *string `json:"town"`
	District      *string `json:"district"`
	State         *string `json:"state"`
	MaritalStatus *string `json:"maritalStatus"`
}
