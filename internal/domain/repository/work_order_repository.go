package repository

import (
	"context"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/enum"
	"github.com/seyalworks/tailorshop-api/pkg/pagination"
)

// WorkOrderRepository defines the interface for work order data operations
type WorkOrderRepository interface {
	Create(ctx context.Context, order *entity.WorkOrder) error
	GetByOrderID(ctx context.Context, orderID string) (*entity.WorkOrder, error)
	Update(ctx context.Context, order *entity.WorkOrder) error
	Delete(ctx context.Context, orderID string) error
	// List returns work orders newest first, optionally filtered by status.
	List(ctx context.Context, status *enum.WorkOrderStatus, params *pagination.PaginationParams) ([]entity.WorkOrder, int64, error)
}
