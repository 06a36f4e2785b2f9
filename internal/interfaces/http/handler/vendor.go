package handler

import (
	"github.com/gin-gonic/gin"
	marketapp "github.com/marketplace/backend/internal/application/marketplace"
)

// VendorHandler handles vendor registration and vendor product listings
type VendorHandler struct {
	BaseHandler
	vendorService *marketapp.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *marketapp.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// List godoc
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.vendorService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendors)
}

// Register godoc
// @Summary      Register a vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        request body marketapp.RegisterVendorRequest true "Vendor registration"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Router       /vendors [post]
func (h *VendorHandler) Register(c *gin.Context) {
	var req marketapp.RegisterVendorRequest
	if !h.BindJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, vendor)
}

// ListProducts godoc
// @Summary      List a vendor's products
// @Tags         vendors
// @Produce      json
// @Param        id path int true "Vendor ID"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Router       /vendors/{id}/products [get]
func (h *VendorHandler) ListProducts(c *gin.Context) {
	vendorID, ok := h.PathID(c, "id", "vendor ID")
	if !ok {
		return
	}

	products, err := h.vendorService.ListProducts(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// AddProduct godoc
// @Summary      Add a product to a vendor's catalog
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id      path int                          true "Vendor ID"
// @Param        request body marketapp.AddProductRequest true "Product"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Router       /vendors/{id}/products [post]
func (h *VendorHandler) AddProduct(c *gin.Context) {
	vendorID, ok := h.PathID(c, "id", "vendor ID")
	if !ok {
		return
	}

	var req marketapp.AddProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.VendorID = vendorID

	product, err := h.vendorService.AddProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}
