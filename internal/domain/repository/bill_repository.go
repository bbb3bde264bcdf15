package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
)

// BillRepository defines the interface for bill data operations. Bills are
// never deleted.
type BillRepository interface {
	// Create persists the bill together with its line items.
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// ListByCustomer returns the customer's bills with line items, newest
	// first by bill date.
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
}
