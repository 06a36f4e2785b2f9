package handler

import (
	"github.com/gin-gonic/gin"
	marketapp "github.com/marketplace/backend/internal/application/marketplace"
	"github.com/marketplace/backend/internal/domain/marketplace"
)

// CartHandler handles a customer's pending order
type CartHandler struct {
	BaseHandler
	cartService *marketapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *marketapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// CartStatusResponse reports the outcome of closing a cart
type CartStatusResponse struct {
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
}

// View godoc
// @Summary      View the customer's cart
// @Tags         cart
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /customers/{id}/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	customerID, ok := h.PathID(c, "id", "customer ID")
	if !ok {
		return
	}

	cart, err := h.cartService.View(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem godoc
// @Summary      Add a product to the cart
// @Description  Opens a pending order on the first add. Quantity defaults to 1.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id      path int                         true "Customer ID"
// @Param        request body marketapp.AddToCartRequest true "Product and quantity"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /customers/{id}/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	customerID, ok := h.PathID(c, "id", "customer ID")
	if !ok {
		return
	}

	var req marketapp.AddToCartRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cart, err := h.cartService.AddToCart(c.Request.Context(), customerID, req.ProductID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, cart)
}

// RemoveItem godoc
// @Summary      Remove a line from the cart
// @Tags         cart
// @Produce      json
// @Param        id     path int true "Customer ID"
// @Param        itemId path int true "Order item ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /customers/{id}/cart/items/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	customerID, ok := h.PathID(c, "id", "customer ID")
	if !ok {
		return
	}
	itemID, ok := h.PathID(c, "itemId", "order item ID")
	if !ok {
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), customerID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Cancel godoc
// @Summary      Cancel the cart's order
// @Tags         cart
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /customers/{id}/cart/cancel [post]
func (h *CartHandler) Cancel(c *gin.Context) {
	customerID, ok := h.PathID(c, "id", "customer ID")
	if !ok {
		return
	}

	if err := h.cartService.Cancel(c.Request.Context(), customerID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, CartStatusResponse{CustomerID: customerID, Status: marketplace.OrderStatusCancelled.String()})
}

// Checkout godoc
// @Summary      Complete the cart's order
// @Tags         cart
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /customers/{id}/cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	customerID, ok := h.PathID(c, "id", "customer ID")
	if !ok {
		return
	}

	if err := h.cartService.Checkout(c.Request.Context(), customerID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, CartStatusResponse{CustomerID: customerID, Status: marketplace.OrderStatusCompleted.String()})
}
