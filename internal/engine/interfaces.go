package engine

import (
	"github.com/shopspring/decimal"
)

type priceCatalog interface {
	PriceOf(symbol string) (decimal.Decimal, bool)
}
