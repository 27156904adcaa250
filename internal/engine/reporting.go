package engine

import (
	"fmt"
	"io"
	"stocktracker/types"
	"strings"
)

const summaryWidth = 60

// WriteSummary prints the valuation table shown in the terminal.
func WriteSummary(w io.Writer, v types.Valuation, cur Currency) error {
	rule := strings.Repeat("-", summaryWidth)
	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, tableHeader())
	fmt.Fprintln(&b, rule)
	for _, row := range v.Rows {
		fmt.Fprintln(&b, tableRow(row, cur))
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%-38s %s\n", "TOTAL PORTFOLIO VALUE:", cur.Format(v.Total))
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())
	return err
}

func tableHeader() string {
	return fmt.Sprintf("%-8s %-8s %-10s %-12s", "Stock", "Shares", "Price", "Total Value")
}

func tableRow(row types.ValuationRow, cur Currency) string {
	return fmt.Sprintf("%-8s %-8d %s%-9s %s%-11s",
		row.Symbol, row.Shares,
		cur.Symbol(), cur.Fixed(row.Price),
		cur.Symbol(), cur.Fixed(row.Total),
	)
}
