package marketplace

import "github.com/shopspring/decimal"

// Vendor is a seller that owns zero or more products
type Vendor struct {
	ID                   int64           `json:"vendor_id"`
	BusinessName         string          `json:"business_name"`
	FeedbackScore        decimal.Decimal `json:"feedback_score"` // starts at zero, nothing updates it
	GeographicalPresence string          `json:"geographical_presence"`
}
