package engine

import (
	"errors"
	"fmt"
	"math"
	"stocktracker/types"
	"strconv"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrUnknownSymbol = fmt.Errorf("unknown symbol: %w", ErrInvalidInput)
var ErrQuantityNotNumber = fmt.Errorf("quantity must be a whole number: %w", ErrInvalidInput)
var ErrQuantityNotPositive = fmt.Errorf("quantity must be a positive number: %w", ErrInvalidInput)

// portfolio keeps share counts per symbol in the order symbols were first added.
type portfolio struct {
	catalog priceCatalog
	symbols []string
	shares  map[string]int64
}

func newPortfolio(catalog priceCatalog) *portfolio {
	return &portfolio{
		catalog: catalog,
		shares:  make(map[string]int64),
	}
}

// AddShares inserts a holding or increments an existing one. A failed add leaves
// the portfolio untouched.
func (p *portfolio) AddShares(symbol string, quantity int64) (types.Holding, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if _, ok := p.catalog.PriceOf(symbol); !ok {
		return types.Holding{}, fmt.Errorf("%q: %w", symbol, ErrUnknownSymbol)
	}
	if quantity <= 0 {
		return types.Holding{}, fmt.Errorf("%d: %w", quantity, ErrQuantityNotPositive)
	}

	held, exists := p.shares[symbol]
	if held > math.MaxInt64-quantity {
		return types.Holding{}, fmt.Errorf("%s total shares overflow: %w", symbol, ErrInvalidInput)
	}
	if !exists {
		p.symbols = append(p.symbols, symbol)
	}
	p.shares[symbol] = held + quantity
	return types.Holding{Symbol: symbol, Shares: p.shares[symbol]}, nil
}

func (p *portfolio) IsEmpty() bool {
	return len(p.symbols) == 0
}

// Holdings returns the holdings in insertion order.
func (p *portfolio) Holdings() []types.Holding {
	holdings := make([]types.Holding, 0, len(p.symbols))
	for _, sym := range p.symbols {
		holdings = append(holdings, types.Holding{Symbol: sym, Shares: p.shares[sym]})
	}
	return holdings
}

// ParseQuantity parses a share quantity typed by the user.
func ParseQuantity(raw string) (int64, error) {
	qty, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, ErrQuantityNotNumber)
	}
	if qty <= 0 {
		return 0, fmt.Errorf("%d: %w", qty, ErrQuantityNotPositive)
	}
	return qty, nil
}
