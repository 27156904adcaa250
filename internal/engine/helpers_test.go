package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type mapCatalog map[string]decimal.Decimal

func (m mapCatalog) PriceOf(symbol string) (decimal.Decimal, bool) {
	p, ok := m[symbol]
	return p, ok
}

func testCatalog() mapCatalog {
	return mapCatalog{
		"AAPL":  decimal.RequireFromString("180.00"),
		"TSLA":  decimal.RequireFromString("250.00"),
		"GOOGL": decimal.RequireFromString("2800.00"),
		"INTC":  decimal.RequireFromString("45.10"),
	}
}

func usd(t *testing.T) Currency {
	t.Helper()
	cur, err := NewCurrency("USD")
	require.NoError(t, err)
	return cur
}
