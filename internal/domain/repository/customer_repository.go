package repository

import (
	"context"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, customerID string) error
	// Search returns customers whose name or phone contains q
	// (case-insensitive), ordered by name.
	Search(ctx context.Context, q string, params *pagination.PaginationParams) ([]entity.Customer, int64, error)
}
