package marketplace

import "context"

// Ledger is the in-memory relational store behind the marketplace.
//
// Every operation is total: lookups that find nothing return an empty slice
// or ok == false, never an error. The error return only reports failures of
// the underlying storage, which the memory implementation never produces.
type Ledger interface {
	// AddVendor appends a vendor with a zero feedback score
	AddVendor(ctx context.Context, businessName, geographicalPresence string) (int64, error)

	// ListVendors returns all vendors in insertion order
	ListVendors(ctx context.Context) ([]Vendor, error)

	// AddProduct appends a product without validating its vendor reference
	AddProduct(ctx context.Context, p NewProduct) (int64, error)

	// GetProduct looks up a product by id
	GetProduct(ctx context.Context, id int64) (Product, bool, error)

	// ListProductsByVendor returns the vendor's products in insertion order
	ListProductsByVendor(ctx context.Context, vendorID int64) ([]Product, error)

	// SearchProducts returns products whose name or tags contain term,
	// case-insensitively, joined with their vendor name
	SearchProducts(ctx context.Context, term string) ([]ProductWithVendor, error)

	// AddCustomer appends a customer
	AddCustomer(ctx context.Context, name, contactNumber, shippingAddress string) (int64, error)

	// GetCustomer looks up a customer by id
	GetCustomer(ctx context.Context, id int64) (Customer, bool, error)

	// CreateOrder appends a pending order stamped with the ledger clock
	CreateOrder(ctx context.Context, customerID int64) (int64, error)

	// GetOrder looks up an order by id
	GetOrder(ctx context.Context, id int64) (Order, bool, error)

	// AddOrderItem appends an order item; the order may be in any status
	AddOrderItem(ctx context.Context, item NewOrderItem) (int64, error)

	// RemoveOrderItem deletes the item with the given id, if present
	RemoveOrderItem(ctx context.Context, id int64) error

	// SetOrderStatus overwrites the status of the order, if present
	SetOrderStatus(ctx context.Context, orderID int64, status OrderStatus) error

	// ListOrderItemsWithDetails returns the order's items joined with product
	// and vendor; items whose product or vendor does not resolve are skipped
	ListOrderItemsWithDetails(ctx context.Context, orderID int64) ([]OrderItemDetail, error)

	// ListOrdersForCustomer returns the customer's orders, newest first
	ListOrdersForCustomer(ctx context.Context, customerID int64) ([]Order, error)
}
