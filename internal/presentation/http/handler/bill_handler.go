package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/seyalworks/tailorshop-api/internal/application/service"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/request"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/response"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Save handles creating a bill
func (h *BillHandler) Save(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.BillItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.BillItemInput{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		CustomerID: req.CustomerID,
		Items:      items,
		Total:      req.Total,
		PaidAmount: req.PaidAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill saved successfully", bill)
}

// ListForCustomer handles the enriched bill list for one customer
func (h *BillHandler) ListForCustomer(c *gin.Context) {
	bills, err := h.billService.ListBillsForCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved successfully", bills)
}

// UpdatePayment handles replacing a bill's paid amount
func (h *BillHandler) UpdatePayment(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.RecordPayment(c.Request.Context(), billID, req.PaidAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", bill)
}
