package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/pkg/apperror"
	"github.com/seyalworks/tailorshop-api/pkg/validate"
)

func TestCreateCustomerNormalizesPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"bare 10 digits", "9876543210", "+919876543210"},
		{"country code without plus", "919876543210", "+919876543210"},
		{"already normalized", "+919876543210", "+919876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCustomerService(newFakeCustomerRepo())

			customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
				Name:        "Priya",
				PhoneNumber: tt.phone,
				Address:     "12 Main St",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, customer.PhoneNumber)
		})
	}
}

func TestCreateCustomerAssignsIDAndDefaults(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "9876543210",
		Address:     "12 Main St",
	})
	require.NoError(t, err)

	assert.True(t, validate.CustomerID(customer.CustomerID), "got %q", customer.CustomerID)
	assert.Contains(t, customer.CustomerID, "CUST-PRI-")
	assert.Equal(t, "Dindigul", customer.District)
	assert.Equal(t, "Tamil Nadu", customer.State)
	assert.Equal(t, "Married", customer.MaritalStatus)
	assert.False(t, customer.Favorite)
}

func TestCreateCustomerRejectsBadPhone(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	// Starts with 5, outside the 6-9 mobile range
	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "5876543210",
		Address:     "12 Main St",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.NotEmpty(t, appErr.Errors)
}

func TestCreateCustomerDuplicatePhone(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "+919876543210",
		Address:     "12 Main St",
	})
	require.NoError(t, err)

	// Same number without the prefix still collides after normalization
	_, err = svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Lakshmi",
		PhoneNumber: "9876543210",
		Address:     "34 South St",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

// duplicateKeyCustomerRepo behaves like the store when the generated
// customer id loses a race on the unique index: the insert itself comes
// back as a Conflict.
type duplicateKeyCustomerRepo struct {
	*fakeCustomerRepo
}

func (r *duplicateKeyCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return apperror.NewConflictError("Customer ID or phone number already registered")
}

func TestCreateCustomerDuplicateKeyOnInsert(t *testing.T) {
	svc := NewCustomerService(&duplicateKeyCustomerRepo{newFakeCustomerRepo()})

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "9876543210",
		Address:     "12 Main St",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

// collidingCustomerRepo reports every candidate customer id as taken,
// exhausting the allocation retries.
type collidingCustomerRepo struct {
	*fakeCustomerRepo
}

func (r *collidingCustomerRepo) GetByCustomerID(ctx context.Context, customerID string) (*entity.Customer, error) {
	return &entity.Customer{CustomerID: customerID}, nil
}

func TestCreateCustomerIDAllocationExhausted(t *testing.T) {
	svc := NewCustomerService(&collidingCustomerRepo{newFakeCustomerRepo()})

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "9876543210",
		Address:     "12 Main St",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateCustomerPartial(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	created, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "9876543210",
		Address:     "12 Main St",
	})
	require.NoError(t, err)

	newAddr := "99 New St"
	updated, err := svc.UpdateCustomer(context.Background(), created.CustomerID, &UpdateCustomerInput{
		Address: &newAddr,
	})
	require.NoError(t, err)

	assert.Equal(t, "99 New St", updated.Address)
	// Untouched fields survive
	assert.Equal(t, "Priya", updated.Name)
	assert.Equal(t, "+919876543210", updated.PhoneNumber)
}

func TestUpdateCustomerPhoneConflict(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "9876543210",
		Address:     "12 Main St",
	})
	require.NoError(t, err)

	second, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Lakshmi",
		PhoneNumber: "9123456789",
		Address:     "34 South St",
	})
	require.NoError(t, err)

	taken := "9876543210"
	_, err = svc.UpdateCustomer(context.Background(), second.CustomerID, &UpdateCustomerInput{
		PhoneNumber: &taken,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateCustomerKeepingOwnPhone(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	created, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "9876543210",
		Address:     "12 Main St",
	})
	require.NoError(t, err)

	// Resubmitting the customer's own number is not a conflict
	same := "9876543210"
	_, err = svc.UpdateCustomer(context.Background(), created.CustomerID, &UpdateCustomerInput{
		PhoneNumber: &same,
	})
	assert.NoError(t, err)
}

func TestToggleFavorite(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	created, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "9876543210",
		Address:     "12 Main St",
	})
	require.NoError(t, err)
	require.False(t, created.Favorite)

	toggled, err := svc.ToggleFavorite(context.Background(), created.CustomerID)
	require.NoError(t, err)
	assert.True(t, toggled.Favorite)

	toggled, err = svc.ToggleFavorite(context.Background(), created.CustomerID)
	require.NoError(t, err)
	assert.False(t, toggled.Favorite)
}

func TestGetCustomerErrors(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.GetCustomer(context.Background(), "CUST-bad")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.GetCustomer(context.Background(), "CUST-ZZZ-01/01/2025-0001")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteCustomer(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	created, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Priya",
		PhoneNumber: "9876543210",
		Address:     "12 Main St",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(context.Background(), created.CustomerID))

	err = svc.DeleteCustomer(context.Background(), created.CustomerID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
