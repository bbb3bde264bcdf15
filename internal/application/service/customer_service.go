package service

import (
	"context"
	"time"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"github.com/seyalworks/tailorshop-api/pkg/apperror"
	"github.com/seyalworks/tailorshop-api/pkg/identifier"
	"github.com/seyalworks/tailorshop-api/pkg/pagination"
	"github.com/seyalworks/tailorshop-api/pkg/validate"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name          string `validate:"required,min=2,max=255"`
	PhoneNumber   string `validate:"required,inphone"`
	Address       string `validate:"required"`
	Town          *string
	District      string
	State         string
	MaritalStatus string `validate:"omitempty,oneof=Married Unmarried"`
	Favorite      bool
}

// CreateCustomer normalizes the phone number, validates the input once,
// assigns a customer id and persists the record.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	input.PhoneNumber = validate.NormalizePhone(input.PhoneNumber)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.GetByPhone(ctx, input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Phone number already registered")
	}

	now := time.Now()
	customerID, err := s.freshCustomerID(ctx, input.Name, now)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		CustomerID:    customerID,
		Name:          input.Name,
		PhoneNumber:   input.PhoneNumber,
		Address:       input.Address,
		Town:          input.Town,
		District:      defaultIfEmpty(input.District, "Dindigul"),
		State:         defaultIfEmpty(input.State, "Tamil Nadu"),
		MaritalStatus: defaultIfEmpty(input.MaritalStatus, "Married"),
		Favorite:      input.Favorite,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// freshCustomerID generates a customer id that is not yet taken. The random
// suffix leaves room for collisions among same-prefix customers created the
// same day; a handful of retries is plenty.
func (s *CustomerService) freshCustomerID(ctx context.Context, name string, at time.Time) (string, error) {
	for range [5]struct{}{} {
		id := identifier.NewCustomerID(name, at)
		existing, err := s.customerRepo.GetByCustomerID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
	return "", apperror.NewConflictError("Could not allocate a unique customer ID")
}

// GetCustomer retrieves a customer by its customer id
func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*entity.Customer, error) {
	if !validate.CustomerID(customerID) {
		return nil, apperror.NewBadRequestError("Invalid customer ID format")
	}

	customer, err := s.customerRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// SearchCustomers lists customers matching q on name or phone
func (s *CustomerService) SearchCustomers(ctx context.Context, q string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.Search(ctx, q, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name          *string `validate:"omitempty,min=2,max=255"`
	PhoneNumber   *string
	Address       *string
	Town          *string
	District      *string
	State         *string
	MaritalStatus *string `validate:"omitempty,oneof=Married Unmarried"`
}

// UpdateCustomer applies a partial update. A changed phone number is
// normalized and re-validated against the same canonical rule used at
// creation.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, input *UpdateCustomerInput) (*entity.Customer, error) {
	if !validate.CustomerID(customerID) {
		return nil, apperror.NewBadRequestError("Invalid customer ID format")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.PhoneNumber != nil {
		phone := validate.NormalizePhone(*input.PhoneNumber)
		if !validate.Phone(phone) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "phoneNumber", Message: "must be +91 followed by 10 digits starting 6-9"},
			})
		}
		if phone != customer.PhoneNumber {
			existing, err := s.customerRepo.GetByPhone(ctx, phone)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperror.NewConflictError("Phone number already registered")
			}
		}
		customer.PhoneNumber = phone
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Town != nil {
		customer.Town = input.Town
	}
	if input.District != nil {
		customer.District = *input.District
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.MaritalStatus != nil {
		customer.MaritalStatus = *input.MaritalStatus
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// ToggleFavorite flips the customer's favorite flag
func (s *CustomerService) ToggleFavorite(ctx context.Context, customerID string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	customer.Favorite = !customer.Favorite

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer. Bills and work orders referencing the
// customer are left untouched.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	customer, err := s.customerRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, customerID)
}

func defaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
