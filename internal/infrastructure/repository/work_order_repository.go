package repository

import (
	"context"
	"errors"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/enum"
	domainRepo "github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"github.com/seyalworks/tailorshop-api/pkg/pagination"
	"gorm.io/gorm"
)

type workOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *gorm.DB) domainRepo.WorkOrderRepository {
	return &workOrderRepository{db: db}
}

func (r *workOrderRepository) Create(ctx context.Context, order *entity.WorkOrder) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(order).Error,
		"Order ID already exists")
}

func (r *workOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*entity.WorkOrder, error) {
	var order entity.WorkOrder
	err := r.db.WithContext(ctx).First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *workOrderRepository) Update(ctx context.Context, order *entity.WorkOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *workOrderRepository) Delete(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Delete(&entity.WorkOrder{}, "order_id = ?", orderID).Error
}

func (r *workOrderRepository) List(ctx context.Context, status *enum.WorkOrderStatus, params *pagination.PaginationParams) ([]entity.WorkOrder, int64, error) {
	var orders []entity.WorkOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.WorkOrder{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("submission_date DESC").
		Find(&orders).Error

	return orders, total, err
}
