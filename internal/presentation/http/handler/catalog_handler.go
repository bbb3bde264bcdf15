package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seyalworks/tailorshop-api/internal/application/service"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/request"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles billing catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Submit handles creating a catalog item
func (h *CatalogHandler) Submit(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// List handles listing all catalog items sorted by name
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.catalogService.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved successfully", items)
}

// Update handles updating a catalog item addressed by itemId in the body
func (h *CatalogHandler) Update(c *gin.Context) {
	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), &service.UpdateItemInput{
		ItemID: req.ItemID,
		Name:   req.Name,
		Price:  req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles deleting a catalog item
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteItem(c.Request.Context(), c.Param("itemId")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}
