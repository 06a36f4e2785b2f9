package marketplace

import (
	"context"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/stretchr/testify/mock"
)

// MockLedger is a mock implementation of marketplace.Ledger
type MockLedger struct {
	mock.Mock
}

var _ marketplace.Ledger = (*MockLedger)(nil)

func (m *MockLedger) AddVendor(ctx context.Context, businessName, geographicalPresence string) (int64, error) {
	args := m.Called(ctx, businessName, geographicalPresence)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) ListVendors(ctx context.Context) ([]marketplace.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.Vendor), args.Error(1)
}

func (m *MockLedger) AddProduct(ctx context.Context, p marketplace.NewProduct) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) GetProduct(ctx context.Context, id int64) (marketplace.Product, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(marketplace.Product), args.Bool(1), args.Error(2)
}

func (m *MockLedger) ListProductsByVendor(ctx context.Context, vendorID int64) ([]marketplace.Product, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.Product), args.Error(1)
}

func (m *MockLedger) SearchProducts(ctx context.Context, term string) ([]marketplace.ProductWithVendor, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.ProductWithVendor), args.Error(1)
}

func (m *MockLedger) AddCustomer(ctx context.Context, name, contactNumber, shippingAddress string) (int64, error) {
	args := m.Called(ctx, name, contactNumber, shippingAddress)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) GetCustomer(ctx context.Context, id int64) (marketplace.Customer, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(marketplace.Customer), args.Bool(1), args.Error(2)
}

func (m *MockLedger) CreateOrder(ctx context.Context, customerID int64) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) GetOrder(ctx context.Context, id int64) (marketplace.Order, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(marketplace.Order), args.Bool(1), args.Error(2)
}

func (m *MockLedger) AddOrderItem(ctx context.Context, item marketplace.NewOrderItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) RemoveOrderItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedger) SetOrderStatus(ctx context.Context, orderID int64, status marketplace.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockLedger) ListOrderItemsWithDetails(ctx context.Context, orderID int64) ([]marketplace.OrderItemDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.OrderItemDetail), args.Error(1)
}

func (m *MockLedger) ListOrdersForCustomer(ctx context.Context, customerID int64) ([]marketplace.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.Order), args.Error(1)
}
