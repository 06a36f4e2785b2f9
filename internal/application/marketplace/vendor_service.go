package marketplace

import (
	"context"
	"fmt"
	"strings"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// VendorService handles vendor registration and vendor catalogs
type VendorService struct {
	ledger marketplace.Ledger
	logger *zap.Logger
}

// NewVendorService creates a new VendorService
func NewVendorService(ledger marketplace.Ledger, log *zap.Logger) *VendorService {
	return &VendorService{ledger: ledger, logger: log}
}

// Register adds a vendor; both fields are required
func (s *VendorService) Register(ctx context.Context, req RegisterVendorRequest) (*VendorResponse, error) {
	name := strings.TrimSpace(req.BusinessName)
	presence := strings.TrimSpace(req.GeographicalPresence)
	if name == "" || presence == "" {
		return nil, shared.InvalidInput("All fields are required")
	}

	id, err := s.ledger.AddVendor(ctx, name, presence)
	if err != nil {
		return nil, fmt.Errorf("register vendor: %w", err)
	}
	logger.FromContext(ctx, s.logger).Info("Vendor registered",
		zap.Int64("vendor_id", id),
		zap.String("business_name", name),
	)

	return &VendorResponse{
		ID:                   id,
		BusinessName:         name,
		FeedbackScore:        decimal.Zero,
		GeographicalPresence: presence,
	}, nil
}

// List returns every vendor in registration order
func (s *VendorService) List(ctx context.Context) ([]VendorResponse, error) {
	vendors, err := s.ledger.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	result := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		result = append(result, ToVendorResponse(v))
	}
	return result, nil
}

// ListProducts returns the products listed under vendorID.
// An unknown vendor simply has no products.
func (s *VendorService) ListProducts(ctx context.Context, vendorID int64) ([]ProductResponse, error) {
	products, err := s.ledger.ListProductsByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list vendor products: %w", err)
	}
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, ToProductResponse(p))
	}
	return result, nil
}

// AddProduct lists a product under a vendor. The vendor id is not checked
// against registered vendors.
func (s *VendorService) AddProduct(ctx context.Context, req AddProductRequest) (*ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	rawPrice := strings.TrimSpace(req.Price)
	if req.VendorID <= 0 || name == "" || rawPrice == "" {
		return nil, shared.InvalidInput("Vendor ID, name and price are required")
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil || price.IsNegative() {
		return nil, shared.InvalidInput("Please enter valid values")
	}

	input := marketplace.NewProduct{
		VendorID: req.VendorID,
		Name:     name,
		Price:    price,
		Tag1:     strings.TrimSpace(req.Tag1),
		Tag2:     strings.TrimSpace(req.Tag2),
		Tag3:     strings.TrimSpace(req.Tag3),
	}
	id, err := s.ledger.AddProduct(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}
	logger.FromContext(ctx, s.logger).Info("Product added",
		zap.Int64("product_id", id),
		zap.Int64("vendor_id", req.VendorID),
		zap.String("price", price.String()),
	)

	resp := ToProductResponse(input.Build(id))
	return &resp, nil
}
