package persistence

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/shopspring/decimal"
)

// MemoryLedger implements marketplace.Ledger with plain slices held in memory.
// Every operation runs under a single mutex and never returns an error.
type MemoryLedger struct {
	mu sync.Mutex

	vendors    []marketplace.Vendor
	products   []marketplace.Product
	customers  []marketplace.Customer
	orders     []marketplace.Order
	orderItems []marketplace.OrderItem

	// last id handed out per collection; never decremented
	vendorSeq    int64
	productSeq   int64
	customerSeq  int64
	orderSeq     int64
	orderItemSeq int64

	now func() time.Time
}

// NewMemoryLedger creates an empty MemoryLedger
func NewMemoryLedger(opts ...LedgerOption) *MemoryLedger {
	o := applyLedgerOptions(opts)
	return &MemoryLedger{now: o.now}
}

var _ marketplace.Ledger = (*MemoryLedger)(nil)

// AddVendor appends a vendor with a zero feedback score
func (l *MemoryLedger) AddVendor(_ context.Context, businessName, geographicalPresence string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.vendorSeq++
	l.vendors = append(l.vendors, marketplace.Vendor{
		ID:                   l.vendorSeq,
		BusinessName:         businessName,
		FeedbackScore:        decimal.Zero,
		GeographicalPresence: geographicalPresence,
	})
	return l.vendorSeq, nil
}

// ListVendors returns all vendors in insertion order
func (l *MemoryLedger) ListVendors(_ context.Context) ([]marketplace.Vendor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append(make([]marketplace.Vendor, 0, len(l.vendors)), l.vendors...), nil
}

// AddProduct appends a product
func (l *MemoryLedger) AddProduct(_ context.Context, p marketplace.NewProduct) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.productSeq++
	l.products = append(l.products, p.Build(l.productSeq))
	return l.productSeq, nil
}

// GetProduct looks up a product by id
func (l *MemoryLedger) GetProduct(_ context.Context, id int64) (marketplace.Product, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if p := l.findProduct(id); p != nil {
		return *p, true, nil
	}
	return marketplace.Product{}, false, nil
}

// ListProductsByVendor filters products by exact vendor id
func (l *MemoryLedger) ListProductsByVendor(_ context.Context, vendorID int64) ([]marketplace.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]marketplace.Product, 0)
	for _, p := range l.products {
		if p.VendorID == vendorID {
			result = append(result, p)
		}
	}
	return result, nil
}

// SearchProducts matches name and tags case-insensitively and joins the vendor name
func (l *MemoryLedger) SearchProducts(_ context.Context, term string) ([]marketplace.ProductWithVendor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	matcher := marketplace.NewSearchMatcher(term)
	result := make([]marketplace.ProductWithVendor, 0)
	for _, p := range l.products {
		if !matcher.Matches(p) {
			continue
		}
		result = append(result, marketplace.JoinVendor(p, l.findVendor(p.VendorID)))
	}
	return result, nil
}

// AddCustomer appends a customer
func (l *MemoryLedger) AddCustomer(_ context.Context, name, contactNumber, shippingAddress string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.customerSeq++
	l.customers = append(l.customers, marketplace.Customer{
		ID:              l.customerSeq,
		Name:            name,
		ContactNumber:   contactNumber,
		ShippingAddress: shippingAddress,
	})
	return l.customerSeq, nil
}

// GetCustomer looks up a customer by id
func (l *MemoryLedger) GetCustomer(_ context.Context, id int64) (marketplace.Customer, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, c := range l.customers {
		if c.ID == id {
			return c, true, nil
		}
	}
	return marketplace.Customer{}, false, nil
}

// CreateOrder appends a pending order
func (l *MemoryLedger) CreateOrder(_ context.Context, customerID int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orderSeq++
	l.orders = append(l.orders, marketplace.Order{
		ID:         l.orderSeq,
		CustomerID: customerID,
		CreatedAt:  l.now(),
		Status:     marketplace.OrderStatusPending,
	})
	return l.orderSeq, nil
}

// GetOrder looks up an order by id
func (l *MemoryLedger) GetOrder(_ context.Context, id int64) (marketplace.Order, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if o := l.findOrder(id); o != nil {
		return *o, true, nil
	}
	return marketplace.Order{}, false, nil
}

// AddOrderItem appends an order item
func (l *MemoryLedger) AddOrderItem(_ context.Context, item marketplace.NewOrderItem) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orderItemSeq++
	l.orderItems = append(l.orderItems, item.Build(l.orderItemSeq))
	return l.orderItemSeq, nil
}

// RemoveOrderItem deletes the item with the given id, if present
func (l *MemoryLedger) RemoveOrderItem(_ context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orderItems = slices.DeleteFunc(l.orderItems, func(item marketplace.OrderItem) bool {
		return item.ID == id
	})
	return nil
}

// SetOrderStatus overwrites the order status in place
func (l *MemoryLedger) SetOrderStatus(_ context.Context, orderID int64, status marketplace.OrderStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if o := l.findOrder(orderID); o != nil {
		o.Status = status
	}
	return nil
}

// ListOrderItemsWithDetails joins the order's items with product and vendor
func (l *MemoryLedger) ListOrderItemsWithDetails(_ context.Context, orderID int64) ([]marketplace.OrderItemDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]marketplace.OrderItemDetail, 0)
	for _, item := range l.orderItems {
		if item.OrderID != orderID {
			continue
		}
		if detail, ok := marketplace.JoinOrderItem(item, l.findProduct(item.ProductID), l.findVendor(item.VendorID)); ok {
			result = append(result, detail)
		}
	}
	return result, nil
}

// ListOrdersForCustomer returns the customer's orders, newest first
func (l *MemoryLedger) ListOrdersForCustomer(_ context.Context, customerID int64) ([]marketplace.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]marketplace.Order, 0)
	for _, o := range l.orders {
		if o.CustomerID == customerID {
			result = append(result, o)
		}
	}
	marketplace.SortNewestFirst(result)
	return result, nil
}

// findVendor, findProduct and findOrder expect l.mu to be held

func (l *MemoryLedger) findVendor(id int64) *marketplace.Vendor {
	for i := range l.vendors {
		if l.vendors[i].ID == id {
			return &l.vendors[i]
		}
	}
	return nil
}

func (l *MemoryLedger) findProduct(id int64) *marketplace.Product {
	for i := range l.products {
		if l.products[i].ID == id {
			return &l.products[i]
		}
	}
	return nil
}

func (l *MemoryLedger) findOrder(id int64) *marketplace.Order {
	for i := range l.orders {
		if l.orders[i].ID == id {
			return &l.orders[i]
		}
	}
	return nil
}
