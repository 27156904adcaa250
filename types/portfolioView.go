package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type ValuationRow struct {
	Symbol string
	Shares int64
	Price  decimal.Decimal
	Total  decimal.Decimal
}

// Valuation is derived from the holdings and the catalog on demand and never stored.
type Valuation struct {
	Rows  []ValuationRow
	Total decimal.Decimal
	Time  time.Time
}
