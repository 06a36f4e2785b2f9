package persistence

import "time"

type ledgerOptions struct {
	now func() time.Time
}

// LedgerOption configures a ledger implementation
type LedgerOption func(*ledgerOptions)

// WithClock overrides the clock used to stamp new orders
func WithClock(now func() time.Time) LedgerOption {
	return func(o *ledgerOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func applyLedgerOptions(opts []LedgerOption) ledgerOptions {
	o := ledgerOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
