package marketplace

import (
	"context"
	"testing"

	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/infrastructure/persistence"
	"github.com/marketplace/backend/internal/infrastructure/seed"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newSeededLedger returns a memory ledger holding the sample catalog
func newSeededLedger(t *testing.T, opts ...persistence.LedgerOption) marketplace.Ledger {
	t.Helper()
	ledger := persistence.NewMemoryLedger(opts...)
	_, err := seed.Load(context.Background(), ledger)
	require.NoError(t, err)
	return ledger
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
