package handler

import (
	"github.com/gin-gonic/gin"
	marketapp "github.com/marketplace/backend/internal/application/marketplace"
)

// CustomerHandler handles customer registration and login
type CustomerHandler struct {
	BaseHandler
	customerService *marketapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *marketapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Register godoc
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body marketapp.RegisterCustomerRequest true "Customer registration"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Router       /customers [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	var req marketapp.RegisterCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// Login godoc
// @Summary      Log in as an existing customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body marketapp.LoginRequest true "Customer ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /customers/login [post]
func (h *CustomerHandler) Login(c *gin.Context) {
	var req marketapp.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Login(c.Request.Context(), req.CustomerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}
