package marketplace

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// UnknownVendorName is joined into search results whose vendor reference dangles
const UnknownVendorName = "Unknown"

// ProductWithVendor is a product joined with its owning vendor's name
type ProductWithVendor struct {
	Product
	VendorName string `json:"vendor_name"`
	// VendorResolved is false when VendorID points at no vendor;
	// VendorName is then UnknownVendorName.
	VendorResolved bool `json:"vendor_resolved"`
}

// JoinVendor attaches the vendor (if any) to a product
func JoinVendor(p Product, v *Vendor) ProductWithVendor {
	if v == nil {
		return ProductWithVendor{Product: p, VendorName: UnknownVendorName}
	}
	return ProductWithVendor{Product: p, VendorName: v.BusinessName, VendorResolved: true}
}

// OrderItemDetail is an order item joined with its product and vendor
type OrderItemDetail struct {
	OrderItem
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	VendorName  string          `json:"vendor_name"`
}

// LineTotal returns price * quantity
func (d OrderItemDetail) LineTotal() decimal.Decimal {
	return d.Price.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// JoinOrderItem resolves an order item against its product and vendor.
// ok is false when either reference does not resolve.
func JoinOrderItem(item OrderItem, p *Product, v *Vendor) (detail OrderItemDetail, ok bool) {
	if p == nil || v == nil {
		return OrderItemDetail{}, false
	}
	return OrderItemDetail{
		OrderItem:   item,
		ProductName: p.Name,
		Price:       p.Price,
		VendorName:  v.BusinessName,
	}, true
}

// SearchMatcher tests products against a search term using Unicode case folding.
type SearchMatcher struct {
	folder cases.Caser
	term   string
}

// NewSearchMatcher prepares a matcher for term
func NewSearchMatcher(term string) *SearchMatcher {
	folder := cases.Fold()
	return &SearchMatcher{
		folder: folder,
		term:   folder.String(term),
	}
}

// Matches reports whether the term is a case-insensitive substring of the
// product name or of any present tag
func (m *SearchMatcher) Matches(p Product) bool {
	if m.contains(p.Name) {
		return true
	}
	for _, tag := range p.Tags() {
		if m.contains(tag) {
			return true
		}
	}
	return false
}

func (m *SearchMatcher) contains(s string) bool {
	return strings.Contains(m.folder.String(s), m.term)
}
