package repository

import (
	"fmt"
	"stocktracker/types"

	"github.com/shopspring/decimal"
)

// PriceOf returns the unit price of symbol. Lookup ignores case and surrounding spaces.
func (c Catalog) PriceOf(symbol string) (decimal.Decimal, bool) {
	i, ok := c.index[normalizeTicker(symbol)]
	if !ok {
		return decimal.Decimal{}, false
	}
	return c.assets[i].Price, true
}

// GetAssetByTicker retrieves a types.Asset by its ticker.
func (c Catalog) GetAssetByTicker(ticker string) (*types.Asset, error) {
	i, ok := c.index[normalizeTicker(ticker)]
	if !ok {
		return nil, fmt.Errorf("ticker %s %w", ticker, ErrAssetNotFound)
	}
	asset := c.assets[i]
	return &asset, nil
}

// Assets returns a copy of the catalog in display order.
func (c Catalog) Assets() []types.Asset {
	return append([]types.Asset(nil), c.assets...)
}

func (c Catalog) Len() int {
	return len(c.assets)
}
