package marketplace

// DefaultQuantity is used when an order item is added without a positive quantity
const DefaultQuantity = 1

// OrderItem links an order to a product and the product's vendor at add time
type OrderItem struct {
	ID        int64 `json:"order_item_id"`
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	VendorID  int64 `json:"vendor_id"`
	Quantity  int   `json:"quantity"`
}

// NewOrderItem carries the inputs of Ledger.AddOrderItem.
// None of the references are validated.
type NewOrderItem struct {
	OrderID   int64
	ProductID int64
	VendorID  int64
	Quantity  int
}

// Build returns the OrderItem that this input describes under the given id
func (n NewOrderItem) Build(id int64) OrderItem {
	quantity := n.Quantity
	if quantity <= 0 {
		quantity = DefaultQuantity
	}
	return OrderItem{
		ID:        id,
		OrderID:   n.OrderID,
		ProductID: n.ProductID,
		VendorID:  n.VendorID,
		Quantity:  quantity,
	}
}
