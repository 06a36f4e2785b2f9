package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	ledger := persistence.NewMemoryLedger()

	res, err := Load(ctx, ledger)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, res.VendorIDs)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, res.ProductIDs)
	assert.Equal(t, []int64{1}, res.CustomerIDs)

	vendorList, err := ledger.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendorList, 3)
	assert.Equal(t, "FashionHub", vendorList[1].BusinessName)
	assert.Equal(t, "North America, Europe", vendorList[1].GeographicalPresence)

	fashion, err := ledger.ListProductsByVendor(ctx, 2)
	require.NoError(t, err)
	require.Len(t, fashion, 2)
	assert.Equal(t, "Designer Jeans", fashion[0].Name)
	assert.Equal(t, "89.99", fashion[0].Price.StringFixed(2))
	assert.Equal(t, []string{"Outerwear", "Leather", "Winter"}, fashion[1].Tags())

	hits, err := ledger.SearchProducts(ctx, "coffee")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "HomeEssentials", hits[0].VendorName)

	customer, ok, err := ledger.GetCustomer(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "John Doe", customer.Name)
}

type failingLedger struct {
	marketplace.Ledger
}

func (failingLedger) AddVendor(context.Context, string, string) (int64, error) {
	return 0, errors.New("disk full")
}

func TestLoad_PropagatesErrors(t *testing.T) {
	_, err := Load(context.Background(), failingLedger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TechGadgets")
	assert.Contains(t, err.Error(), "disk full")
}
