package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seyalworks/tailorshop-api/internal/application/service"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/request"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/response"
)

// WorkOrderHandler handles Aari work order HTTP requests
type WorkOrderHandler struct {
	workOrderService *service.WorkOrderService
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(workOrderService *service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{workOrderService: workOrderService}
}

// Submit handles creating a work order
func (h *WorkOrderHandler) Submit(c *gin.Context) {
	var req request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.workOrderService.CreateWorkOrder(c.Request.Context(), &service.CreateWorkOrderInput{
		CustomerID:     req.CustomerID,
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		SubmissionDate: req.SubmissionDate,
		DeliveryDate:   req.DeliveryDate,
		Address:        req.Address,
		Designs:        req.Designs,
		WorkType:       req.WorkType,
		StaffName:      req.StaffName,
		QuotedPrice:    req.QuotedPrice,
		WorkerPrice:    req.WorkerPrice,
		ClientPrice:    req.ClientPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Work order created successfully", order)
}

// List handles listing work orders, optionally filtered by status
func (h *WorkOrderHandler) List(c *gin.Context) {
	result, err := h.workOrderService.ListWorkOrders(c.Request.Context(), c.Query("status"), paginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Work orders retrieved successfully", result)
}

// Get handles getting a single work order
func (h *WorkOrderHandler) Get(c *gin.Context) {
	order, err := h.workOrderService.GetWorkOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order retrieved successfully", order)
}

// Update handles updating a work order
func (h *WorkOrderHandler) Update(c *gin.Context) {
	var req request.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.workOrderService.UpdateWorkOrder(c.Request.Context(), c.Param("orderId"), &service.UpdateWorkOrderInput{
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		SubmissionDate: req.SubmissionDate,
		DeliveryDate:   req.DeliveryDate,
		Address:        req.Address,
		Designs:        req.Designs,
		WorkType:       req.WorkType,
		StaffName:      req.StaffName,
		Status:         req.Status,
		QuotedPrice:    req.QuotedPrice,
		WorkerPrice:    req.WorkerPrice,
		ClientPrice:    req.ClientPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order updated successfully", order)
}

// Delete handles deleting a work order
func (h *WorkOrderHandler) Delete(c *gin.Context) {
	if err := h.workOrderService.DeleteWorkOrder(c.Request.Context(), c.Param("orderId")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work order deleted successfully", nil)
}
