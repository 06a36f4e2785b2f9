package marketplace

import (
	"slices"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the lifecycle allows moving to target.
// The ledger itself does not consult this; callers that want strict
// transitions check it before calling SetOrderStatus.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return s.IsValid() && !s.IsTerminal() && target.IsTerminal()
}

// IsTerminal reports whether no further transitions are possible
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order is a cart or purchase record owned by one customer
type Order struct {
	ID         int64       `json:"order_id"`
	CustomerID int64       `json:"customer_id"`
	CreatedAt  time.Time   `json:"order_date"`
	Status     OrderStatus `json:"status"`
}

// SortNewestFirst orders by CreatedAt descending. Orders are expected in
// insertion order; equal timestamps end up in reverse insertion order.
func SortNewestFirst(orders []Order) {
	slices.Reverse(orders)
	slices.SortStableFunc(orders, func(a, b Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
