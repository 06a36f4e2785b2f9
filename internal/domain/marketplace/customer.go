package marketplace

// Customer is a registered shopper
type Customer struct {
	ID              int64  `json:"customer_id"`
	Name            string `json:"name"`
	ContactNumber   string `json:"contact_number"`
	ShippingAddress string `json:"shipping_address"`
}
