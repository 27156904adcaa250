package repository

import (
	"errors"
	"fmt"
	"sort"
	"stocktracker/types"
	"strings"

	"github.com/shopspring/decimal"
)

// Global error declarations.
var (
	ErrAssetNotFound = errors.New("not found in catalog")
	ErrInvalidAsset  = errors.New("invalid catalog entry")
)

// Catalog is the fixed ticker to price table. It is never mutated after NewCatalog.
type Catalog struct {
	assets []types.Asset
	index  map[string]int
}

// NewCatalog validates the assets and builds a catalog that keeps their order.
func NewCatalog(assets []types.Asset) (Catalog, error) {
	if len(assets) == 0 {
		return Catalog{}, fmt.Errorf("empty catalog: %w", ErrInvalidAsset)
	}
	c := Catalog{
		assets: make([]types.Asset, 0, len(assets)),
		index:  make(map[string]int, len(assets)),
	}
	for _, a := range assets {
		ticker := normalizeTicker(a.Ticker)
		if ticker == "" {
			return Catalog{}, fmt.Errorf("empty ticker: %w", ErrInvalidAsset)
		}
		if !a.Price.IsPositive() {
			return Catalog{}, fmt.Errorf("ticker %s price %s: %w", ticker, a.Price, ErrInvalidAsset)
		}
		if _, dup := c.index[ticker]; dup {
			return Catalog{}, fmt.Errorf("duplicate ticker %s: %w", ticker, ErrInvalidAsset)
		}
		c.index[ticker] = len(c.assets)
		c.assets = append(c.assets, types.Asset{Ticker: ticker, Price: a.Price})
	}
	return c, nil
}

// DefaultAssets returns the built-in catalog.
func DefaultAssets() []types.Asset {
	return []types.Asset{
		{Ticker: "AAPL", Price: decimal.RequireFromString("180.00")},
		{Ticker: "TSLA", Price: decimal.RequireFromString("250.00")},
		{Ticker: "GOOGL", Price: decimal.RequireFromString("2800.00")},
		{Ticker: "MSFT", Price: decimal.RequireFromString("420.00")},
		{Ticker: "AMZN", Price: decimal.RequireFromString("3400.00")},
		{Ticker: "NVDA", Price: decimal.RequireFromString("900.00")},
		{Ticker: "META", Price: decimal.RequireFromString("350.00")},
		{Ticker: "NFLX", Price: decimal.RequireFromString("450.00")},
		{Ticker: "AMD", Price: decimal.RequireFromString("120.00")},
		{Ticker: "INTC", Price: decimal.RequireFromString("45.00")},
	}
}

// AssetsFromPrices parses a ticker to price-text table, as found in the config
// file, into assets sorted by ticker.
func AssetsFromPrices(prices map[string]string) ([]types.Asset, error) {
	assets := make([]types.Asset, 0, len(prices))
	for ticker, raw := range prices {
		price, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("ticker %s price %q: %w", ticker, raw, ErrInvalidAsset)
		}
		assets = append(assets, types.Asset{Ticker: normalizeTicker(ticker), Price: price})
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].Ticker < assets[j].Ticker })
	return assets, nil
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
