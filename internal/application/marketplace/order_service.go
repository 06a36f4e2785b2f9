package marketplace

import (
	"context"
	"fmt"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// OrderService serves order history and order details
type OrderService struct {
	ledger marketplace.Ledger
	logger *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(ledger marketplace.Ledger, log *zap.Logger) *OrderService {
	return &OrderService{ledger: ledger, logger: log}
}

// History lists the customer's orders, newest first
func (s *OrderService) History(ctx context.Context, customerID int64) ([]OrderSummaryResponse, error) {
	orders, err := s.ledger.ListOrdersForCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	result := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, ToOrderSummaryResponse(o))
	}
	return result, nil
}

// Details returns an order with its resolvable items
func (s *OrderService) Details(ctx context.Context, orderID int64) (*OrderDetailResponse, error) {
	order, ok, err := s.ledger.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !ok {
		logger.FromContext(ctx, s.logger).Debug("Order not found", zap.Int64("order_id", orderID))
		return nil, shared.NotFound("Order not found")
	}

	details, err := s.ledger.ListOrderItemsWithDetails(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	items, total := toOrderItemResponses(details)

	return &OrderDetailResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		OrderDate:  order.CreatedAt.Format(OrderDateLayout),
		Status:     order.Status.String(),
		Items:      items,
		Total:      total,
	}, nil
}
