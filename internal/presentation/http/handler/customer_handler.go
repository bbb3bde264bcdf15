package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seyalworks/tailorshop-api/internal/application/service"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/request"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Submit handles creating a customer
func (h *CustomerHandler) Submit(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Town:          req.Town,
		District:      req.District,
		State:         req.State,
		MaritalStatus: req.MaritalStatus,
		Favorite:      req.Favorite,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// List handles searching customers by name or phone substring
func (h *CustomerHandler) List(c *gin.Context) {
	result, err := h.customerService.SearchCustomers(c.Request.Context(), c.Query("q"), paginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("customerId"), &service.UpdateCustomerInput{
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Town:          req.Town,
		District:      req.District,
		State:         req.State,
		MaritalStatus: req.MaritalStatus,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// ToggleFavorite handles flipping the favorite flag
func (h *CustomerHandler) ToggleFavorite(c *gin.Context) {
	customer, err := h.customerService.ToggleFavorite(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer favorite toggled successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("customerId")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}
