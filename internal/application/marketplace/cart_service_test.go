package marketplace

import (
	"context"
	"errors"
	"testing"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddAndView(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newSeededLedger(t), testLogger())

	empty, err := svc.View(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, empty.OrderID)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, "$0.00", empty.Total)

	cart, err := svc.AddToCart(ctx, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart.OrderID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, OrderItemResponse{
		ID:          1,
		ProductID:   1,
		ProductName: "Smartphone X",
		Price:       "$599.99",
		VendorName:  "TechGadgets",
		Quantity:    1,
		LineTotal:   "$599.99",
	}, cart.Items[0])

	cart, err = svc.AddToCart(ctx, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart.OrderID, "second add reuses the pending order")
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "$259.98", cart.Items[1].LineTotal)
	assert.Equal(t, "$859.97", cart.Total)

	viewed, err := svc.View(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, cart, viewed)
}

func TestCartService_AddToCart_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product opens no order", func(t *testing.T) {
		ledger := newSeededLedger(t)
		svc := NewCartService(ledger, testLogger())

		_, err := svc.AddToCart(ctx, 1, 99, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Equal(t, "Product not found", err.Error())

		orders, err := ledger.ListOrdersForCustomer(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc := NewCartService(newSeededLedger(t), testLogger())

		_, err := svc.AddToCart(ctx, 42, 1, 1)
		require.Error(t, err)
		assert.Equal(t, "Customer not found", err.Error())
	})

	t.Run("wraps ledger failures", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("GetCustomer", mock.Anything, int64(1)).Return(marketplace.Customer{ID: 1}, true, nil)
		ledger.On("GetProduct", mock.Anything, int64(5)).Return(marketplace.Product{ID: 5, VendorID: 3}, true, nil)
		ledger.On("CreateOrder", mock.Anything, int64(1)).Return(int64(0), errors.New("disk full"))
		svc := NewCartService(ledger, testLogger())

		_, err := svc.AddToCart(ctx, 1, 5, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		ledger.AssertNotCalled(t, "AddOrderItem", mock.Anything, mock.Anything)
	})

	t.Run("copies the product's vendor onto the item", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("GetCustomer", mock.Anything, int64(1)).Return(marketplace.Customer{ID: 1}, true, nil)
		ledger.On("GetProduct", mock.Anything, int64(5)).Return(marketplace.Product{ID: 5, VendorID: 3}, true, nil)
		ledger.On("CreateOrder", mock.Anything, int64(1)).Return(int64(10), nil)
		ledger.On("AddOrderItem", mock.Anything, marketplace.NewOrderItem{
			OrderID: 10, ProductID: 5, VendorID: 3, Quantity: 4,
		}).Return(int64(1), nil)
		ledger.On("ListOrderItemsWithDetails", mock.Anything, int64(10)).Return([]marketplace.OrderItemDetail{}, nil)
		svc := NewCartService(ledger, testLogger())

		cart, err := svc.AddToCart(ctx, 1, 5, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(10), cart.OrderID)
		ledger.AssertExpectations(t)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	ledger := newSeededLedger(t)
	svc := NewCartService(ledger, testLogger())

	_, err := svc.RemoveItem(ctx, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	_, err = svc.AddToCart(ctx, 1, 1, 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, 1, 5, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Coffee Maker", cart.Items[0].ProductName)
	assert.Equal(t, "$49.99", cart.Total)

	_, err = svc.RemoveItem(ctx, 1, 1)
	require.Error(t, err)
	assert.Equal(t, "Cart item not found", err.Error())

	t.Run("items of another customer's cart are out of reach", func(t *testing.T) {
		other, err := ledger.AddCustomer(ctx, "Jane Roe", "555", "9 Elm St")
		require.NoError(t, err)
		_, err = svc.AddToCart(ctx, other, 3, 1)
		require.NoError(t, err)

		_, err = svc.RemoveItem(ctx, other, 2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestCartService_Cancel(t *testing.T) {
	ctx := context.Background()
	ledger := newSeededLedger(t)
	svc := NewCartService(ledger, testLogger())

	err := svc.Cancel(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))
	assert.Equal(t, "No active order to cancel", err.Error())

	cart, err := svc.AddToCart(ctx, 1, 4, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, 1))

	order, ok, err := ledger.GetOrder(ctx, cart.OrderID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, marketplace.OrderStatusCancelled, order.Status)

	details, err := ledger.ListOrderItemsWithDetails(ctx, cart.OrderID)
	require.NoError(t, err)
	assert.Len(t, details, 1, "cancelling keeps the items")

	viewed, err := svc.View(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, viewed.Items)

	err = svc.Cancel(ctx, 1)
	assert.Equal(t, "No active order to cancel", err.Error())
}

func TestCartService_Checkout(t *testing.T) {
	ctx := context.Background()
	ledger := newSeededLedger(t)
	svc := NewCartService(ledger, testLogger())

	err := svc.Checkout(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, "No items in cart to checkout", err.Error())

	first, err := svc.AddToCart(ctx, 1, 3, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Checkout(ctx, 1))

	order, _, err := ledger.GetOrder(ctx, first.OrderID)
	require.NoError(t, err)
	assert.Equal(t, marketplace.OrderStatusCompleted, order.Status)

	second, err := svc.AddToCart(ctx, 1, 3, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderID, second.OrderID, "checkout starts a fresh cart")
}

func TestCartService_ClosedOutsideCart(t *testing.T) {
	ctx := context.Background()
	ledger := newSeededLedger(t)
	svc := NewCartService(ledger, testLogger())

	cart, err := svc.AddToCart(ctx, 1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, ledger.SetOrderStatus(ctx, cart.OrderID, marketplace.OrderStatusCompleted))

	err = svc.Cancel(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	// the stale cart is dropped
	err = svc.Cancel(ctx, 1)
	assert.Equal(t, "No active order to cancel", err.Error())
}
