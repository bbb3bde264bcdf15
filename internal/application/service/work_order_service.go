package service

import (
	"context"
	"time"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/enum"
	"github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"github.com/seyalworks/tailorshop-api/pkg/apperror"
	"github.com/seyalworks/tailorshop-api/pkg/identifier"
	"github.com/seyalworks/tailorshop-api/pkg/pagination"
	"github.com/seyalworks/tailorshop-api/pkg/validate"
)

// WorkOrderService handles Aari embroidery work order operations
type WorkOrderService struct {
	workOrderRepo repository.WorkOrderRepository
	customerRepo  repository.CustomerRepository
}

// NewWorkOrderService creates a new work order service
func NewWorkOrderService(
	workOrderRepo repository.WorkOrderRepository,
	customerRepo repository.CustomerRepository,
) *WorkOrderService {
	return &WorkOrderService{
		workOrderRepo: workOrderRepo,
		customerRepo:  customerRepo,
	}
}

// CreateWorkOrderInput represents the create work order input
type CreateWorkOrderInput struct {
	CustomerID     string    `validate:"required,customerid"`
	Name           string    `validate:"required,min=2,max=255"`
	PhoneNumber    string    `validate:"required,inphone"`
	SubmissionDate time.Time `validate:"required"`
	DeliveryDate   time.Time `validate:"required,gtfield=SubmissionDate"`
	Address        string
	Designs        []string `validate:"required,min=1,max=5,dive,url"`
	WorkType       string   `validate:"required,oneof=bridal normal"`
	StaffName      string   `validate:"required"`
	QuotedPrice    float64  `validate:"gt=0"`
	WorkerPrice    *float64 `validate:"omitempty,gte=0"`
	ClientPrice    *float64 `validate:"omitempty,gte=0"`
}

// CreateWorkOrder validates the referenced customer, assigns an order id and
// persists the work order in pending status.
func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, input *CreateWorkOrderInput) (*entity.WorkOrder, error) {
	input.PhoneNumber = validate.NormalizePhone(input.PhoneNumber)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByCustomerID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	workType := enum.WorkTypeNormal
	if input.WorkType == "bridal" {
		workType = enum.WorkTypeBridal
	}

	orderID, err := s.freshOrderID(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.WorkOrder{
		OrderID:        orderID,
		CustomerID:     input.CustomerID,
		Name:           input.Name,
		PhoneNumber:    input.PhoneNumber,
		SubmissionDate: input.SubmissionDate,
		DeliveryDate:   input.DeliveryDate,
		Address:        input.Address,
		Designs:        input.Designs,
		WorkType:       workType,
		StaffName:      input.StaffName,
		Status:         enum.WorkOrderStatusPending,
		QuotedPrice:    toPaise(input.QuotedPrice),
	}
	if input.WorkerPrice != nil {
		v := toPaise(*input.WorkerPrice)
		order.WorkerPrice = &v
	}
	if input.ClientPrice != nil {
		v := toPaise(*input.ClientPrice)
		order.ClientPrice = &v
	}

	if err := s.workOrderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// freshOrderID generates an order id that is not yet taken. The 6-digit
// suffix is a small space, so collisions get likelier as orders accumulate;
// retry before giving up.
func (s *WorkOrderService) freshOrderID(ctx context.Context) (string, error) {
	for range [5]struct{}{} {
		id := identifier.NewOrderID()
		existing, err := s.workOrderRepo.GetByOrderID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
	return "", apperror.NewConflictError("Could not allocate a unique order ID")
}

// GetWorkOrder retrieves a work order by its order id
func (s *WorkOrderService) GetWorkOrder(ctx context.Context, orderID string) (*entity.WorkOrder, error) {
	order, err := s.workOrderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Work order")
	}
	return order, nil
}

// ListWorkOrders lists work orders newest first, optionally filtered by
// status ("pending" or "completed").
func (s *WorkOrderService) ListWorkOrders(ctx context.Context, status string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.WorkOrder], error) {
	var filter *enum.WorkOrderStatus
	switch status {
	case "":
	case "pending":
		v := enum.WorkOrderStatusPending
		filter = &v
	case "completed":
		v := enum.WorkOrderStatusCompleted
		filter = &v
	default:
		return nil, apperror.NewBadRequestError("Status must be pending or completed")
	}

	orders, total, err := s.workOrderRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateWorkOrderInput represents the update work order input
type UpdateWorkOrderInput struct {
	Name           *string    `validate:"omitempty,min=2,max=255"`
	PhoneNumber    *string
	SubmissionDate *time.Time
	DeliveryDate   *time.Time
	Address        *string
	Designs        []string `validate:"omitempty,min=1,max=5,dive,url"`
	WorkType       *string  `validate:"omitempty,oneof=bridal normal"`
	StaffName      *string
	Status         *string  `validate:"omitempty,oneof=pending completed"`
	QuotedPrice    *float64 `validate:"omitempty,gt=0"`
	WorkerPrice    *float64 `validate:"omitempty,gte=0"`
	ClientPrice    *float64 `validate:"omitempty,gte=0"`
}

// UpdateWorkOrder applies a partial update. The first transition to
// completed stamps CompletedDate; later saves while completed leave the
// stamp where it is.
func (s *WorkOrderService) UpdateWorkOrder(ctx context.Context, orderID string, input *UpdateWorkOrderInput) (*entity.WorkOrder, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	order, err := s.workOrderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Work order")
	}

	if input.Name != nil {
		order.Name = *input.Name
	}
	if input.PhoneNumber != nil {
		phone := validate.NormalizePhone(*input.PhoneNumber)
		if !validate.Phone(phone) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "phoneNumber", Message: "must be +91 followed by 10 digits starting 6-9"},
			})
		}
		order.PhoneNumber = phone
	}
	if input.SubmissionDate != nil {
		order.SubmissionDate = *input.SubmissionDate
	}
	if input.DeliveryDate != nil {
		order.DeliveryDate = *input.DeliveryDate
	}
	if !order.DeliveryDate.After(order.SubmissionDate) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "deliveryDate", Message: "must be after the submission date"},
		})
	}
	if input.Address != nil {
		order.Address = *input.Address
	}
	if input.Designs != nil {
		order.Designs = input.Designs
	}
	if input.WorkType != nil {
		if *input.WorkType == "bridal" {
			order.WorkType = enum.WorkTypeBridal
		} else {
			order.WorkType = enum.WorkTypeNormal
		}
	}
	if input.StaffName != nil {
		order.StaffName = *input.StaffName
	}
	if input.QuotedPrice != nil {
		order.QuotedPrice = toPaise(*input.QuotedPrice)
	}
	if input.WorkerPrice != nil {
		v := toPaise(*input.WorkerPrice)
		order.WorkerPrice = &v
	}
	if input.ClientPrice != nil {
		v := toPaise(*input.ClientPrice)
		order.ClientPrice = &v
	}

	if input.Status != nil {
		next := enum.WorkOrderStatusPending
		if *input.Status == "completed" {
			next = enum.WorkOrderStatusCompleted
		}
		if next == enum.WorkOrderStatusCompleted && order.CompletedDate == nil {
			now := time.Now()
			order.CompletedDate = &now
		}
		order.Status = next
	}

	if err := s.workOrderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// DeleteWorkOrder removes a work order
func (s *WorkOrderService) DeleteWorkOrder(ctx context.Context, orderID string) error {
	order, err := s.workOrderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Work order")
	}

	return s.workOrderRepo.Delete(ctx, orderID)
}
