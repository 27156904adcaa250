package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// Currency formats decimal amounts for display.
type Currency struct {
	cur *money.Currency
}

func NewCurrency(code string) (Currency, error) {
	cur := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if cur == nil {
		return Currency{}, fmt.Errorf("%q: %w", code, ErrUnknownCurrency)
	}
	return Currency{cur: cur}, nil
}

func (c Currency) Code() string   { return c.cur.Code }
func (c Currency) Symbol() string { return c.cur.Grapheme }

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// Format renders the amount with the currency's own layout, e.g. $2,800.00.
func (c Currency) Format(d decimal.Decimal) string {
	minor := d.Shift(int32(c.cur.Fraction)).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return c.formatLarge(d)
	}
	return c.cur.Formatter().Format(minor.IntPart())
}

// formatLarge lays out amounts whose minor units do not fit in an int64 the
// same way go-money's formatter does.
func (c Currency) formatLarge(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(int32(c.cur.Fraction))
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(c.cur.Thousand)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(c.cur.Decimal)
		b.WriteString(frac)
	}

	s := strings.Replace(c.cur.Template, "1", b.String(), 1)
	s = strings.Replace(s, "$", c.cur.Grapheme, 1)
	if d.IsNegative() {
		s = "-" + s
	}
	return s
}

// Fixed renders the amount as a plain number with the currency's minor digits.
func (c Currency) Fixed(d decimal.Decimal) string {
	return d.StringFixed(int32(c.cur.Fraction))
}
