package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"stocktracker/types"
	"strconv"
)

// writeCSVFile writes the valuation to a CSV file at the given path.
func writeCSVFile(path string, v types.Valuation, cur Currency) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close summary file: %w", cerr)
		}
	}()

	return WriteCSV(f, v, cur)
}

// WriteCSV writes the valuation to any io.Writer as CSV.
func WriteCSV(w io.Writer, v types.Valuation, cur Currency) error {
	cw := csv.NewWriter(w)

	header := []string{"Stock Symbol", "Shares", "Price per Share", "Total Value"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range v.Rows {
		record := []string{
			row.Symbol,
			strconv.FormatInt(row.Shares, 10),
			cur.Fixed(row.Price),
			cur.Fixed(row.Total),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	// blank separator line before the total
	if err := cw.Write([]string{}); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := cw.Write([]string{"TOTAL PORTFOLIO VALUE", "", "", cur.Fixed(v.Total)}); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
