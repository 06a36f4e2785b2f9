package marketplace

import (
	"strings"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderDateLayout is how order timestamps are rendered to clients
const OrderDateLayout = "2006-01-02 15:04:05"

// RegisterVendorRequest represents a request to register a vendor
type RegisterVendorRequest struct {
	BusinessName         string `json:"business_name" binding:"required,max=200"`
	GeographicalPresence string `json:"geographical_presence" binding:"required,max=200"`
}

// AddProductRequest represents a request to list a product under a vendor.
// Price is kept as text so that malformed numbers reach the service's validation.
type AddProductRequest struct {
	VendorID int64  `json:"-"`
	Name     string `json:"name" binding:"required,max=200"`
	Price    string `json:"price" binding:"required"`
	Tag1     string `json:"tag1" binding:"max=100"`
	Tag2     string `json:"tag2" binding:"max=100"`
	Tag3     string `json:"tag3" binding:"max=100"`
}

// RegisterCustomerRequest represents a customer registration
type RegisterCustomerRequest struct {
	Name            string `json:"name" binding:"required,max=200"`
	ContactNumber   string `json:"contact_number" binding:"required,max=50"`
	ShippingAddress string `json:"shipping_address" binding:"required,max=500"`
}

// LoginRequest represents a customer login by id
type LoginRequest struct {
	CustomerID int64 `json:"customer_id" binding:"required,gt=0"`
}

// AddToCartRequest represents adding a product to the customer's cart
type AddToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"omitempty,gte=1,lte=1000"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID                   int64           `json:"vendor_id"`
	BusinessName         string          `json:"business_name"`
	FeedbackScore        decimal.Decimal `json:"feedback_score"`
	GeographicalPresence string          `json:"geographical_presence"`
}

// ProductResponse represents a product in a vendor's listing
type ProductResponse struct {
	ID           int64           `json:"product_id"`
	VendorID     int64           `json:"vendor_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	Tags         []string        `json:"tags"`
}

// ProductSearchResponse represents one search hit
type ProductSearchResponse struct {
	ID             int64  `json:"product_id"`
	Name           string `json:"name"`
	Price          string `json:"price"`
	VendorID       int64  `json:"vendor_id"`
	VendorName     string `json:"vendor_name"`
	VendorResolved bool   `json:"vendor_resolved"`
	Tags           string `json:"tags"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID              int64  `json:"customer_id"`
	Name            string `json:"name"`
	ContactNumber   string `json:"contact_number"`
	ShippingAddress string `json:"shipping_address"`
}

// OrderItemResponse represents a resolved order line
type OrderItemResponse struct {
	ID          int64  `json:"order_item_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	VendorName  string `json:"vendor_name"`
	Quantity    int    `json:"quantity"`
	LineTotal   string `json:"line_total"`
}

// CartResponse represents the customer's pending order.
// OrderID is zero when the customer has no cart.
type CartResponse struct {
	CustomerID int64               `json:"customer_id"`
	OrderID    int64               `json:"order_id,omitempty"`
	Items      []OrderItemResponse `json:"items"`
	Total      string              `json:"total"`
}

// OrderSummaryResponse represents one row of the order history
type OrderSummaryResponse struct {
	ID        int64  `json:"order_id"`
	OrderDate string `json:"order_date"`
	Status    string `json:"status"`
}

// OrderDetailResponse represents an order with its resolved items
type OrderDetailResponse struct {
	ID         int64               `json:"order_id"`
	CustomerID int64               `json:"customer_id"`
	OrderDate  string              `json:"order_date"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
	Total      string              `json:"total"`
}

func formatPrice(d decimal.Decimal) string {
	return valueobject.NewMoneyUSD(d).Format()
}

// ToVendorResponse converts a domain Vendor
func ToVendorResponse(v marketplace.Vendor) VendorResponse {
	return VendorResponse{
		ID:                   v.ID,
		BusinessName:         v.BusinessName,
		FeedbackScore:        v.FeedbackScore,
		GeographicalPresence: v.GeographicalPresence,
	}
}

// ToProductResponse converts a domain Product
func ToProductResponse(p marketplace.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		VendorID:     p.VendorID,
		Name:         p.Name,
		Price:        p.Price,
		PriceDisplay: formatPrice(p.Price),
		Tags:         p.Tags(),
	}
}

// ToProductSearchResponse converts a search hit
func ToProductSearchResponse(p marketplace.ProductWithVendor) ProductSearchResponse {
	return ProductSearchResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          formatPrice(p.Price),
		VendorID:       p.VendorID,
		VendorName:     p.VendorName,
		VendorResolved: p.VendorResolved,
		Tags:           strings.Join(p.Tags(), ", "),
	}
}

// ToCustomerResponse converts a domain Customer
func ToCustomerResponse(c marketplace.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		ContactNumber:   c.ContactNumber,
		ShippingAddress: c.ShippingAddress,
	}
}

// ToOrderSummaryResponse converts a domain Order
func ToOrderSummaryResponse(o marketplace.Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:        o.ID,
		OrderDate: o.CreatedAt.Format(OrderDateLayout),
		Status:    o.Status.String(),
	}
}

// toOrderItemResponses converts resolved order lines and sums their totals
func toOrderItemResponses(details []marketplace.OrderItemDetail) ([]OrderItemResponse, string) {
	items := make([]OrderItemResponse, 0, len(details))
	total := valueobject.Zero(valueobject.DefaultCurrency)
	for _, d := range details {
		line := valueobject.NewMoneyUSD(d.LineTotal())
		// same currency on both sides, Add cannot fail
		total, _ = total.Add(line)
		items = append(items, OrderItemResponse{
			ID:          d.ID,
			ProductID:   d.ProductID,
			ProductName: d.ProductName,
			Price:       formatPrice(d.Price),
			VendorName:  d.VendorName,
			Quantity:    d.Quantity,
			LineTotal:   line.Format(),
		})
	}
	return items, total.Format()
}
