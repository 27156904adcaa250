package engine

import (
	"fmt"
	"io"
	"os"
	"stocktracker/types"
	"strings"
)

const textRuleWidth = 50

// writeTextFile writes the text summary to a file at the given path.
func writeTextFile(path string, v types.Valuation, cur Currency) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close summary file: %w", cerr)
		}
	}()

	return WriteText(f, v, cur)
}

// WriteText writes the plain text summary to any io.Writer.
func WriteText(w io.Writer, v types.Valuation, cur Currency) error {
	var b strings.Builder
	b.WriteString("STOCK PORTFOLIO SUMMARY\n")
	b.WriteString(strings.Repeat("=", textRuleWidth) + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", v.Time.Format("2006-01-02 15:04:05"))

	b.WriteString(tableHeader() + "\n")
	b.WriteString(strings.Repeat("-", textRuleWidth) + "\n")
	for _, row := range v.Rows {
		b.WriteString(tableRow(row, cur) + "\n")
	}
	b.WriteString(strings.Repeat("-", textRuleWidth) + "\n")
	fmt.Fprintf(&b, "TOTAL PORTFOLIO VALUE: %s%s\n", cur.Symbol(), cur.Fixed(v.Total))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
