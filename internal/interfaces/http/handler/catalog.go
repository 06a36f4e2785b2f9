package handler

import (
	"github.com/gin-gonic/gin"
	marketapp "github.com/marketplace/backend/internal/application/marketplace"
)

// CatalogHandler handles product search across all vendors
type CatalogHandler struct {
	BaseHandler
	catalogService *marketapp.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *marketapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// SearchQuery holds the search query string
type SearchQuery struct {
	Q string `form:"q" binding:"max=200"`
}

// Search godoc
// @Summary      Search products by name or tag
// @Description  Case-insensitive substring match; an empty term returns every product
// @Tags         products
// @Produce      json
// @Param        q query string false "Search term"
// @Success      200 {object} dto.Response
// @Router       /products/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Invalid search query")
		return
	}

	results, err := h.catalogService.Search(c.Request.Context(), query.Q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, results)
}
