// Package seed loads the sample marketplace catalog into a ledger.
package seed

import (
	"context"
	"fmt"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/shopspring/decimal"
)

type vendorSeed struct {
	name     string
	presence string
}

type productSeed struct {
	vendor int // index into vendors
	name   string
	price  string
	tags   [marketplace.MaxTags]string
}

var vendors = []vendorSeed{
	{"TechGadgets", "Global"},
	{"FashionHub", "North America, Europe"},
	{"HomeEssentials", "Asia, Australia"},
}

var products = []productSeed{
	{0, "Smartphone X", "599.99", [3]string{"Electronics", "Phone", "5G"}},
	{0, "Wireless Earbuds", "129.99", [3]string{"Audio", "Wireless", "Bluetooth"}},
	{1, "Designer Jeans", "89.99", [3]string{"Clothing", "Denim", "Fashion"}},
	{1, "Leather Jacket", "199.99", [3]string{"Outerwear", "Leather", "Winter"}},
	{2, "Coffee Maker", "49.99", [3]string{"Kitchen", "Coffee", "Appliance"}},
}

// Result reports the ids assigned to the seeded rows
type Result struct {
	VendorIDs   []int64
	ProductIDs  []int64
	CustomerIDs []int64
}

// Load inserts three vendors, five products and one customer.
// Products reference the ids the ledger assigned to their vendors.
func Load(ctx context.Context, ledger marketplace.Ledger) (*Result, error) {
	res := &Result{}

	for _, v := range vendors {
		id, err := ledger.AddVendor(ctx, v.name, v.presence)
		if err != nil {
			return nil, fmt.Errorf("seed vendor %q: %w", v.name, err)
		}
		res.VendorIDs = append(res.VendorIDs, id)
	}

	for _, p := range products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return nil, fmt.Errorf("seed product %q: %w", p.name, err)
		}
		id, err := ledger.AddProduct(ctx, marketplace.NewProduct{
			VendorID: res.VendorIDs[p.vendor],
			Name:     p.name,
			Price:    price,
			Tag1:     p.tags[0],
			Tag2:     p.tags[1],
			Tag3:     p.tags[2],
		})
		if err != nil {
			return nil, fmt.Errorf("seed product %q: %w", p.name, err)
		}
		res.ProductIDs = append(res.ProductIDs, id)
	}

	id, err := ledger.AddCustomer(ctx, "John Doe", "555-123-4567", "123 Main St, Anytown, USA")
	if err != nil {
		return nil, fmt.Errorf("seed customer: %w", err)
	}
	res.CustomerIDs = append(res.CustomerIDs, id)

	return res, nil
}
