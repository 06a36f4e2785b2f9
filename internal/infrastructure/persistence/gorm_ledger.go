package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormLedger implements marketplace.Ledger on top of a GORM connection.
// Rows are always read in id order so that results match insertion order.
type GormLedger struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormLedger creates a ledger backed by db; the schema must already exist
func NewGormLedger(db *gorm.DB, opts ...LedgerOption) *GormLedger {
	o := applyLedgerOptions(opts)
	return &GormLedger{db: db, now: o.now}
}

var _ marketplace.Ledger = (*GormLedger)(nil)

// AddVendor inserts a vendor with a zero feedback score
func (l *GormLedger) AddVendor(ctx context.Context, businessName, geographicalPresence string) (int64, error) {
	model := &models.VendorModel{
		BusinessName:         businessName,
		FeedbackScore:        decimal.Zero,
		GeographicalPresence: geographicalPresence,
	}
	if err := l.db.WithContext(ctx).Create(model).Error; err != nil {
		return 0, fmt.Errorf("failed to add vendor: %w", err)
	}
	return model.ID, nil
}

// ListVendors returns all vendors in insertion order
func (l *GormLedger) ListVendors(ctx context.Context) ([]marketplace.Vendor, error) {
	var rows []models.VendorModel
	if err := l.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	result := make([]marketplace.Vendor, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToDomain())
	}
	return result, nil
}

// AddProduct inserts a product
func (l *GormLedger) AddProduct(ctx context.Context, p marketplace.NewProduct) (int64, error) {
	model := models.ProductModelFromDomain(p)
	if err := l.db.WithContext(ctx).Create(model).Error; err != nil {
		return 0, fmt.Errorf("failed to add product: %w", err)
	}
	return model.ID, nil
}

// GetProduct looks up a product by id
func (l *GormLedger) GetProduct(ctx context.Context, id int64) (marketplace.Product, bool, error) {
	var rows []models.ProductModel
	if err := l.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return marketplace.Product{}, false, fmt.Errorf("failed to get product: %w", err)
	}
	if len(rows) == 0 {
		return marketplace.Product{}, false, nil
	}
	return rows[0].ToDomain(), true, nil
}

// ListProductsByVendor filters products by exact vendor id
func (l *GormLedger) ListProductsByVendor(ctx context.Context, vendorID int64) ([]marketplace.Product, error) {
	var rows []models.ProductModel
	if err := l.db.WithContext(ctx).Where("vendor_id = ?", vendorID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list products by vendor: %w", err)
	}
	result := make([]marketplace.Product, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToDomain())
	}
	return result, nil
}

// SearchProducts loads the catalog and filters it with the shared matcher.
// SQL LIKE folds ASCII only, so the match runs in Go to keep Unicode folding
// identical across ledgers.
func (l *GormLedger) SearchProducts(ctx context.Context, term string) ([]marketplace.ProductWithVendor, error) {
	var rows []models.ProductModel
	if err := l.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	matcher := marketplace.NewSearchMatcher(term)
	matched := make([]marketplace.Product, 0)
	vendorIDs := make([]int64, 0)
	for i := range rows {
		p := rows[i].ToDomain()
		if matcher.Matches(p) {
			matched = append(matched, p)
			vendorIDs = append(vendorIDs, p.VendorID)
		}
	}

	vendors, err := l.vendorsByID(ctx, vendorIDs)
	if err != nil {
		return nil, err
	}

	result := make([]marketplace.ProductWithVendor, 0, len(matched))
	for _, p := range matched {
		var vendor *marketplace.Vendor
		if v, ok := vendors[p.VendorID]; ok {
			vendor = &v
		}
		result = append(result, marketplace.JoinVendor(p, vendor))
	}
	return result, nil
}

// AddCustomer inserts a customer
func (l *GormLedger) AddCustomer(ctx context.Context, name, contactNumber, shippingAddress string) (int64, error) {
	model := &models.CustomerModel{
		Name:            name,
		ContactNumber:   contactNumber,
		ShippingAddress: shippingAddress,
	}
	if err := l.db.WithContext(ctx).Create(model).Error; err != nil {
		return 0, fmt.Errorf("failed to add customer: %w", err)
	}
	return model.ID, nil
}

// GetCustomer looks up a customer by id
func (l *GormLedger) GetCustomer(ctx context.Context, id int64) (marketplace.Customer, bool, error) {
	var rows []models.CustomerModel
	if err := l.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return marketplace.Customer{}, false, fmt.Errorf("failed to get customer: %w", err)
	}
	if len(rows) == 0 {
		return marketplace.Customer{}, false, nil
	}
	return rows[0].ToDomain(), true, nil
}

// CreateOrder inserts a pending order stamped with the ledger clock
func (l *GormLedger) CreateOrder(ctx context.Context, customerID int64) (int64, error) {
	model := &models.OrderModel{
		CustomerID: customerID,
		CreatedAt:  l.now(),
		Status:     marketplace.OrderStatusPending,
	}
	if err := l.db.WithContext(ctx).Create(model).Error; err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}
	return model.ID, nil
}

// GetOrder looks up an order by id
func (l *GormLedger) GetOrder(ctx context.Context, id int64) (marketplace.Order, bool, error) {
	var rows []models.OrderModel
	if err := l.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return marketplace.Order{}, false, fmt.Errorf("failed to get order: %w", err)
	}
	if len(rows) == 0 {
		return marketplace.Order{}, false, nil
	}
	return rows[0].ToDomain(), true, nil
}

// AddOrderItem inserts an order item
func (l *GormLedger) AddOrderItem(ctx context.Context, item marketplace.NewOrderItem) (int64, error) {
	model := models.OrderItemModelFromDomain(item)
	if err := l.db.WithContext(ctx).Create(model).Error; err != nil {
		return 0, fmt.Errorf("failed to add order item: %w", err)
	}
	return model.ID, nil
}

// RemoveOrderItem deletes the item with the given id, if present
func (l *GormLedger) RemoveOrderItem(ctx context.Context, id int64) error {
	if err := l.db.WithContext(ctx).Delete(&models.OrderItemModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to remove order item: %w", err)
	}
	return nil
}

// SetOrderStatus overwrites the order status
func (l *GormLedger) SetOrderStatus(ctx context.Context, orderID int64, status marketplace.OrderStatus) error {
	err := l.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to set order status: %w", err)
	}
	return nil
}

// ListOrderItemsWithDetails joins the order's items with product and vendor
func (l *GormLedger) ListOrderItemsWithDetails(ctx context.Context, orderID int64) ([]marketplace.OrderItemDetail, error) {
	var rows []models.OrderItemModel
	if err := l.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}

	productIDs := make([]int64, 0, len(rows))
	vendorIDs := make([]int64, 0, len(rows))
	for i := range rows {
		productIDs = append(productIDs, rows[i].ProductID)
		vendorIDs = append(vendorIDs, rows[i].VendorID)
	}

	products, err := l.productsByID(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	vendors, err := l.vendorsByID(ctx, vendorIDs)
	if err != nil {
		return nil, err
	}

	result := make([]marketplace.OrderItemDetail, 0, len(rows))
	for i := range rows {
		item := rows[i].ToDomain()
		var product *marketplace.Product
		if p, ok := products[item.ProductID]; ok {
			product = &p
		}
		var vendor *marketplace.Vendor
		if v, ok := vendors[item.VendorID]; ok {
			vendor = &v
		}
		if detail, ok := marketplace.JoinOrderItem(item, product, vendor); ok {
			result = append(result, detail)
		}
	}
	return result, nil
}

// ListOrdersForCustomer returns the customer's orders, newest first
func (l *GormLedger) ListOrdersForCustomer(ctx context.Context, customerID int64) ([]marketplace.Order, error) {
	var rows []models.OrderModel
	if err := l.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	result := make([]marketplace.Order, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToDomain())
	}
	marketplace.SortNewestFirst(result)
	return result, nil
}

func (l *GormLedger) vendorsByID(ctx context.Context, ids []int64) (map[int64]marketplace.Vendor, error) {
	result := make(map[int64]marketplace.Vendor, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []models.VendorModel
	if err := l.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load vendors: %w", err)
	}
	for i := range rows {
		result[rows[i].ID] = rows[i].ToDomain()
	}
	return result, nil
}

func (l *GormLedger) productsByID(ctx context.Context, ids []int64) (map[int64]marketplace.Product, error) {
	result := make(map[int64]marketplace.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []models.ProductModel
	if err := l.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	for i := range rows {
		result[rows[i].ID] = rows[i].ToDomain()
	}
	return result, nil
}
