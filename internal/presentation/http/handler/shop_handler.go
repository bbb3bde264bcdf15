package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seyalworks/tailorshop-api/internal/application/service"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/request"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/dto/response"
)

// ShopHandler handles shop profile HTTP requests
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Get handles reading the shop profile
func (h *ShopHandler) Get(c *gin.Context) {
	shop, err := h.shopService.GetShop(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop retrieved successfully", shop)
}

// Update handles updating the shop profile
func (h *ShopHandler) Update(c *gin.Context) {
	var req request.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shop, err := h.shopService.UpdateShop(c.Request.Context(), &service.UpdateShopInput{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop updated successfully", shop)
}
