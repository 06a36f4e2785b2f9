package marketplace

import (
	"context"
	"fmt"
	"strings"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CustomerService handles customer registration and login
type CustomerService struct {
	ledger marketplace.Ledger
	logger *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(ledger marketplace.Ledger, log *zap.Logger) *CustomerService {
	return &CustomerService{ledger: ledger, logger: log}
}

// Register adds a customer; every field is required
func (s *CustomerService) Register(ctx context.Context, req RegisterCustomerRequest) (*CustomerResponse, error) {
	c := marketplace.Customer{
		Name:            strings.TrimSpace(req.Name),
		ContactNumber:   strings.TrimSpace(req.ContactNumber),
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
	}
	if c.Name == "" || c.ContactNumber == "" || c.ShippingAddress == "" {
		return nil, shared.InvalidInput("All fields are required")
	}

	id, err := s.ledger.AddCustomer(ctx, c.Name, c.ContactNumber, c.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}
	c.ID = id
	logger.FromContext(ctx, s.logger).Info("Customer registered", zap.Int64("customer_id", id))

	resp := ToCustomerResponse(c)
	return &resp, nil
}

// Login resolves a customer by id. There are no credentials.
func (s *CustomerService) Login(ctx context.Context, customerID int64) (*CustomerResponse, error) {
	c, err := findCustomer(ctx, s.ledger, customerID)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(c)
	return &resp, nil
}

func findCustomer(ctx context.Context, ledger marketplace.Ledger, customerID int64) (marketplace.Customer, error) {
	c, ok, err := ledger.GetCustomer(ctx, customerID)
	if err != nil {
		return marketplace.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	if !ok {
		return marketplace.Customer{}, shared.NotFound("Customer not found")
	}
	return c, nil
}
