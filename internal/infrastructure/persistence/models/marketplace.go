package models

import (
	"time"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/shopspring/decimal"
)

// VendorModel is the persistence model for the Vendor domain entity.
type VendorModel struct {
	ID                   int64           `gorm:"primaryKey;autoIncrement"`
	BusinessName         string          `gorm:"type:varchar(200);not null"`
	FeedbackScore        decimal.Decimal `gorm:"type:text;not null;default:'0'"`
	GeographicalPresence string          `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor.
func (m *VendorModel) ToDomain() marketplace.Vendor {
	return marketplace.Vendor{
		ID:                   m.ID,
		BusinessName:         m.BusinessName,
		FeedbackScore:        m.FeedbackScore,
		GeographicalPresence: m.GeographicalPresence,
	}
}

// ProductModel is the persistence model for the Product domain entity.
// VendorID carries no foreign key: dangling vendor references are allowed.
type ProductModel struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	VendorID int64           `gorm:"not null;index"`
	Name     string          `gorm:"type:varchar(200);not null"`
	Price    decimal.Decimal `gorm:"type:text;not null"`
	Tag1     string          `gorm:"type:varchar(100)"`
	Tag2     string          `gorm:"type:varchar(100)"`
	Tag3     string          `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product.
func (m *ProductModel) ToDomain() marketplace.Product {
	return marketplace.Product{
		ID:       m.ID,
		VendorID: m.VendorID,
		Name:     m.Name,
		Price:    m.Price,
		Tag1:     m.Tag1,
		Tag2:     m.Tag2,
		Tag3:     m.Tag3,
	}
}

// ProductModelFromDomain builds a model for a product that has no id yet.
func ProductModelFromDomain(p marketplace.NewProduct) *ProductModel {
	return &ProductModel{
		VendorID: p.VendorID,
		Name:     p.Name,
		Price:    p.Price,
		Tag1:     p.Tag1,
		Tag2:     p.Tag2,
		Tag3:     p.Tag3,
	}
}

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Name            string `gorm:"type:varchar(200);not null"`
	ContactNumber   string `gorm:"type:varchar(50)"`
	ShippingAddress string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() marketplace.Customer {
	return marketplace.Customer{
		ID:              m.ID,
		Name:            m.Name,
		ContactNumber:   m.ContactNumber,
		ShippingAddress: m.ShippingAddress,
	}
}

// OrderModel is the persistence model for the Order domain entity.
type OrderModel struct {
	ID         int64                   `gorm:"primaryKey;autoIncrement"`
	CustomerID int64                   `gorm:"not null;index"`
	CreatedAt  time.Time               `gorm:"not null"`
	Status     marketplace.OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order.
func (m *OrderModel) ToDomain() marketplace.Order {
	return marketplace.Order{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		CreatedAt:  m.CreatedAt,
		Status:     m.Status,
	}
}

// OrderItemModel is the persistence model for the OrderItem domain entity.
type OrderItemModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"not null;index"`
	ProductID int64 `gorm:"not null"`
	VendorID  int64 `gorm:"not null"`
	Quantity  int   `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() marketplace.OrderItem {
	return marketplace.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		VendorID:  m.VendorID,
		Quantity:  m.Quantity,
	}
}

// OrderItemModelFromDomain builds a model for an order item that has no id yet.
func OrderItemModelFromDomain(item marketplace.NewOrderItem) *OrderItemModel {
	built := item.Build(0)
	return &OrderItemModel{
		OrderID:   built.OrderID,
		ProductID: built.ProductID,
		VendorID:  built.VendorID,
		Quantity:  built.Quantity,
	}
}

// MarketplaceModels lists every model the ledger schema is migrated from.
func MarketplaceModels() []any {
	return []any{
		&VendorModel{},
		&ProductModel{},
		&CustomerModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
