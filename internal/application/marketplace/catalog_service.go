package marketplace

import (
	"context"
	"fmt"
	"strings"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CatalogService serves the customer-facing product search
type CatalogService struct {
	ledger marketplace.Ledger
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(ledger marketplace.Ledger, log *zap.Logger) *CatalogService {
	return &CatalogService{ledger: ledger, logger: log}
}

// Search matches term against product names and tags. A blank term lists
// the whole catalog.
func (s *CatalogService) Search(ctx context.Context, term string) ([]ProductSearchResponse, error) {
	hits, err := s.ledger.SearchProducts(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	result := make([]ProductSearchResponse, 0, len(hits))
	for _, hit := range hits {
		if !hit.VendorResolved {
			logger.FromContext(ctx, s.logger).Debug("Search hit has unknown vendor",
				zap.Int64("product_id", hit.ID),
				zap.Int64("vendor_id", hit.VendorID),
			)
		}
		result = append(result, ToProductSearchResponse(hit))
	}
	return result, nil
}
