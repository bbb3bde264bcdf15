package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seyalworks/tailorshop-api/pkg/pagination"
)

// paginationParams reads page/per_page query parameters with defaults
func paginationParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()
	return params
}
