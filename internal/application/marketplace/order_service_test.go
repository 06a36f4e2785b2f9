package marketplace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func hourlyClock() func() time.Time {
	next := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return func() time.Time {
		now := next
		next = next.Add(time.Hour)
		return now
	}
}

func TestOrderService_History(t *testing.T) {
	ctx := context.Background()
	ledger := newSeededLedger(t, persistence.WithClock(hourlyClock()))
	carts := NewCartService(ledger, testLogger())
	svc := NewOrderService(ledger, testLogger())

	history, err := svc.History(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	_, err = carts.AddToCart(ctx, 1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, carts.Cancel(ctx, 1))
	_, err = carts.AddToCart(ctx, 1, 2, 1)
	require.NoError(t, err)
	require.NoError(t, carts.Checkout(ctx, 1))
	_, err = carts.AddToCart(ctx, 1, 3, 1)
	require.NoError(t, err)

	history, err = svc.History(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []OrderSummaryResponse{
		{ID: 3, OrderDate: "2024-03-01 11:30:00", Status: "pending"},
		{ID: 2, OrderDate: "2024-03-01 10:30:00", Status: "completed"},
		{ID: 1, OrderDate: "2024-03-01 09:30:00", Status: "cancelled"},
	}, history)
}

func TestOrderService_Details(t *testing.T) {
	ctx := context.Background()

	t.Run("resolved items and total", func(t *testing.T) {
		ledger := newSeededLedger(t, persistence.WithClock(hourlyClock()))
		carts := NewCartService(ledger, testLogger())
		svc := NewOrderService(ledger, testLogger())

		_, err := carts.AddToCart(ctx, 1, 3, 2)
		require.NoError(t, err)
		_, err = carts.AddToCart(ctx, 1, 5, 1)
		require.NoError(t, err)
		require.NoError(t, carts.Checkout(ctx, 1))

		details, err := svc.Details(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), details.CustomerID)
		assert.Equal(t, "completed", details.Status)
		assert.Equal(t, "2024-03-01 09:30:00", details.OrderDate)
		require.Len(t, details.Items, 2)
		assert.Equal(t, "Designer Jeans", details.Items[0].ProductName)
		assert.Equal(t, "FashionHub", details.Items[0].VendorName)
		assert.Equal(t, 2, details.Items[0].Quantity)
		assert.Equal(t, "$229.97", details.Total)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc := NewOrderService(newSeededLedger(t), testLogger())

		_, err := svc.Details(ctx, 9)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Equal(t, "Order not found", err.Error())
	})

	t.Run("wraps ledger failures", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("ListOrdersForCustomer", mock.Anything, int64(1)).Return(nil, errors.New("boom"))
		svc := NewOrderService(ledger, testLogger())

		_, err := svc.History(ctx, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list orders")
	})
}
