package marketplace

import "github.com/shopspring/decimal"

// MaxTags is the number of free-text tag slots a product carries
const MaxTags = 3

// Product is a sellable item listed by a vendor.
// An empty tag slot means the tag is absent.
type Product struct {
	ID       int64           `json:"product_id"`
	VendorID int64           `json:"vendor_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Tag1     string          `json:"tag1,omitempty"`
	Tag2     string          `json:"tag2,omitempty"`
	Tag3     string          `json:"tag3,omitempty"`
}

// Tags returns the tags that are present, in slot order
func (p Product) Tags() []string {
	tags := make([]string, 0, MaxTags)
	for _, tag := range []string{p.Tag1, p.Tag2, p.Tag3} {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// NewProduct carries the inputs of Ledger.AddProduct.
// VendorID is stored as given; it is not checked against the vendor collection.
type NewProduct struct {
	VendorID int64
	Name     string
	Price    decimal.Decimal
	Tag1     string
	Tag2     string
	Tag3     string
}

// Build returns the Product that this input describes under the given id
func (n NewProduct) Build(id int64) Product {
	return Product{
		ID:       id,
		VendorID: n.VendorID,
		Name:     n.Name,
		Price:    n.Price,
		Tag1:     n.Tag1,
		Tag2:     n.Tag2,
		Tag3:     n.Tag3,
	}
}
