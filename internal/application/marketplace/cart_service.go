package marketplace

import (
	"context"
	"fmt"
	"sync"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CartService keeps one pending order per customer as a shopping cart.
// The cart is created lazily on the first add and forgotten on cancel or
// checkout; the order itself stays in the ledger.
type CartService struct {
	ledger marketplace.Ledger
	logger *zap.Logger

	mu    sync.Mutex
	carts map[int64]int64 // customer id -> pending order id
}

// NewCartService creates a new CartService
func NewCartService(ledger marketplace.Ledger, log *zap.Logger) *CartService {
	return &CartService{
		ledger: ledger,
		logger: log,
		carts:  make(map[int64]int64),
	}
}

// AddToCart adds quantity units of a product to the customer's cart,
// opening a new pending order when the customer has none.
func (s *CartService) AddToCart(ctx context.Context, customerID, productID int64, quantity int) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := findCustomer(ctx, s.ledger, customerID); err != nil {
		return nil, err
	}

	product, ok, err := s.ledger.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !ok {
		return nil, shared.NotFound("Product not found")
	}

	orderID, ok := s.carts[customerID]
	if !ok {
		orderID, err = s.ledger.CreateOrder(ctx, customerID)
		if err != nil {
			return nil, fmt.Errorf("create order: %w", err)
		}
		s.carts[customerID] = orderID
		logger.FromContext(ctx, s.logger).Info("Cart opened",
			zap.Int64("customer_id", customerID),
			zap.Int64("order_id", orderID),
		)
	}

	itemID, err := s.ledger.AddOrderItem(ctx, marketplace.NewOrderItem{
		OrderID:   orderID,
		ProductID: product.ID,
		VendorID:  product.VendorID,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("add order item: %w", err)
	}
	logger.FromContext(ctx, s.logger).Debug("Product added to cart",
		zap.Int64("order_id", orderID),
		zap.Int64("order_item_id", itemID),
		zap.Int64("product_id", product.ID),
	)

	return s.view(ctx, customerID)
}

// View returns the customer's cart; a customer without a cart gets an empty one
func (s *CartService) View(ctx context.Context, customerID int64) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(ctx, customerID)
}

// RemoveItem deletes one line from the customer's cart
func (s *CartService) RemoveItem(ctx context.Context, customerID, itemID int64) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderID, ok := s.carts[customerID]
	if !ok {
		return nil, shared.InvalidState("No active order")
	}

	details, err := s.ledger.ListOrderItemsWithDetails(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	if !containsItem(details, itemID) {
		return nil, shared.NotFound("Cart item not found")
	}

	if err := s.ledger.RemoveOrderItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("remove order item: %w", err)
	}
	logger.FromContext(ctx, s.logger).Debug("Item removed from cart",
		zap.Int64("order_id", orderID),
		zap.Int64("order_item_id", itemID),
	)

	return s.view(ctx, customerID)
}

// Cancel marks the cart's order cancelled and clears the cart.
// Items stay attached to the cancelled order.
func (s *CartService) Cancel(ctx context.Context, customerID int64) error {
	return s.close(ctx, customerID, marketplace.OrderStatusCancelled, "No active order to cancel")
}

// Checkout marks the cart's order completed and clears the cart
func (s *CartService) Checkout(ctx context.Context, customerID int64) error {
	return s.close(ctx, customerID, marketplace.OrderStatusCompleted, "No items in cart to checkout")
}

func (s *CartService) close(ctx context.Context, customerID int64, status marketplace.OrderStatus, noCartMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderID, ok := s.carts[customerID]
	if !ok {
		return shared.InvalidState(noCartMsg)
	}

	order, found, err := s.ledger.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if found && !order.Status.CanTransitionTo(status) {
		delete(s.carts, customerID)
		return shared.InvalidState(fmt.Sprintf("Order is already %s", order.Status))
	}

	if err := s.ledger.SetOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("set order status: %w", err)
	}
	delete(s.carts, customerID)
	logger.FromContext(ctx, s.logger).Info("Cart closed",
		zap.Int64("customer_id", customerID),
		zap.Int64("order_id", orderID),
		zap.String("status", status.String()),
	)
	return nil
}

// view expects s.mu to be held
func (s *CartService) view(ctx context.Context, customerID int64) (*CartResponse, error) {
	orderID, ok := s.carts[customerID]
	if !ok {
		items, total := toOrderItemResponses(nil)
		return &CartResponse{CustomerID: customerID, Items: items, Total: total}, nil
	}

	details, err := s.ledger.ListOrderItemsWithDetails(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	items, total := toOrderItemResponses(details)
	return &CartResponse{CustomerID: customerID, OrderID: orderID, Items: items, Total: total}, nil
}

func containsItem(details []marketplace.OrderItemDetail, itemID int64) bool {
	for _, d := range details {
		if d.ID == itemID {
			return true
		}
	}
	return false
}
