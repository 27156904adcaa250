package engine

import (
	"errors"
	"fmt"
	"stocktracker/types"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNoPrice = errors.New("no catalog price for holding")

// ComputeValuation prices each holding in order. Row total is shares x price and
// the valuation total is the sum of the row totals.
func ComputeValuation(holdings []types.Holding, catalog priceCatalog, at time.Time) (types.Valuation, error) {
	v := types.Valuation{
		Rows:  make([]types.ValuationRow, 0, len(holdings)),
		Total: decimal.Zero,
		Time:  at,
	}
	for _, h := range holdings {
		price, ok := catalog.PriceOf(h.Symbol)
		if !ok {
			return types.Valuation{}, fmt.Errorf("%s: %w", h.Symbol, ErrNoPrice)
		}
		lineTotal := price.Mul(decimal.NewFromInt(h.Shares))
		v.Rows = append(v.Rows, types.ValuationRow{
			Symbol: h.Symbol,
			Shares: h.Shares,
			Price:  price,
			Total:  lineTotal,
		})
		v.Total = v.Total.Add(lineTotal)
	}
	return v, nil
}
