package handler

import (
	"github.com/gin-gonic/gin"
	marketapp "github.com/marketplace/backend/internal/application/marketplace"
)

// OrderHandler handles order history and order details
type OrderHandler struct {
	BaseHandler
	orderService *marketapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *marketapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// History godoc
// @Summary      List a customer's orders, newest first
// @Tags         orders
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} dto.Response
// @Router       /customers/{id}/orders [get]
func (h *OrderHandler) History(c *gin.Context) {
	customerID, ok := h.PathID(c, "id", "customer ID")
	if !ok {
		return
	}

	orders, err := h.orderService.History(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Details godoc
// @Summary      Get an order with its items
// @Tags         orders
// @Produce      json
// @Param        id path int true "Order ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /orders/{id} [get]
func (h *OrderHandler) Details(c *gin.Context) {
	orderID, ok := h.PathID(c, "id", "order ID")
	if !ok {
		return
	}

	order, err := h.orderService.Details(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
