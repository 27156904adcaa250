package types

import (
	"github.com/shopspring/decimal"
)

// Asset is a catalog entry: a ticker and its static unit price.
type Asset struct {
	Ticker string          `json:"ticker"`
	Price  decimal.Decimal `json:"price"`
}
