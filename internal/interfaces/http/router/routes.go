package router

import (
	"github.com/marketplace/backend/internal/interfaces/http/handler"
	"github.com/marketplace/backend/internal/interfaces/http/middleware"
)

// Handlers groups the marketplace HTTP handlers
type Handlers struct {
	Vendor   *handler.VendorHandler
	Catalog  *handler.CatalogHandler
	Customer *handler.CustomerHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	System   *handler.SystemHandler
}

// MarketplaceGroups returns the versioned API route groups.
// Per-customer state (cart, history, order details) is never cached.
func MarketplaceGroups(h Handlers) []RouteRegistrar {
	vendors := NewDomainGroup("/vendors")
	vendors.GET("", h.Vendor.List).
		POST("", h.Vendor.Register).
		GET("/:id/products", h.Vendor.ListProducts).
		POST("/:id/products", h.Vendor.AddProduct)

	products := NewDomainGroup("/products")
	products.GET("/search", h.Catalog.Search)

	customers := NewDomainGroup("/customers").Use(middleware.NoStore())
	customers.POST("", h.Customer.Register).
		POST("/login", h.Customer.Login).
		GET("/:id/orders", h.Order.History)

	cart := customers.Group("/:id/cart")
	cart.GET("", h.Cart.View).
		POST("/items", h.Cart.AddItem).
		DELETE("/items/:itemId", h.Cart.RemoveItem).
		POST("/cancel", h.Cart.Cancel).
		POST("/checkout", h.Cart.Checkout)

	orders := NewDomainGroup("/orders").Use(middleware.NoStore())
	orders.GET("/:id", h.Order.Details)

	return []RouteRegistrar{vendors, products, customers, orders}
}
