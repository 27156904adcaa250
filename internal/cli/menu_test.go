package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"stocktracker/internal/engine"
	"stocktracker/internal/repository"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenu(t *testing.T, outputDir, input string) (*Menu, *engine.Engine, *bytes.Buffer) {
	t.Helper()
	catalog, err := repository.NewCatalog(repository.DefaultAssets())
	require.NoError(t, err)
	cur, err := engine.NewCurrency("USD")
	require.NoError(t, err)

	eng := engine.NewEngine(catalog, engine.NewReportingConfig(outputDir, cur), nil)
	out := &bytes.Buffer{}
	return NewMenu(eng, catalog, strings.NewReader(input), out, nil), eng, out
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestMenu_ExitImmediately(t *testing.T) {
	m, _, out := newTestMenu(t, t.TempDir(), script("5"))
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Welcome to Stock Portfolio Tracker!")
	assert.Contains(t, out.String(), "1. View available stocks")
	assert.Contains(t, out.String(), "5. Exit")
	assert.Contains(t, out.String(), "Thank you for using Stock Portfolio Tracker!")
}

func TestMenu_EndOfInputStopsCleanly(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"at menu", ""},
		{"while adding symbol", script("2", "AAPL", "3")},
		{"while asking quantity", script("2", "AAPL")},
		{"while choosing format", script("2", "AAPL", "1", "done", "4")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestMenu(t, t.TempDir(), tt.input)
			assert.NoError(t, m.Run())
		})
	}
}

func TestMenu_ViewCatalog(t *testing.T) {
	m, _, out := newTestMenu(t, t.TempDir(), script("1", "5"))
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Available Stocks:")
	assert.Contains(t, out.String(), "AAPL: $180.00")
	assert.Contains(t, out.String(), "GOOGL: $2,800.00")
	assert.Contains(t, out.String(), "INTC: $45.00")
}

func TestMenu_AddStocks(t *testing.T) {
	m, eng, out := newTestMenu(t, t.TempDir(), script(
		"2",
		"aapl", "10",
		"XYZ",
		"tsla", "zero",
		"tsla", "-1",
		"tsla", "2",
		"AAPL", "5",
		"done",
		"5",
	))
	require.NoError(t, m.Run())

	text := out.String()
	assert.Contains(t, text, "AAPL: $180.00", "catalog is shown before the first add")
	assert.Contains(t, text, "Added 10 shares of AAPL to portfolio.")
	assert.Contains(t, text, "Stock 'XYZ' not found in our database.")
	assert.Contains(t, text, "Please enter a valid number for quantity.")
	assert.Contains(t, text, "Quantity must be a positive number.")
	assert.Contains(t, text, "Added 2 shares of TSLA to portfolio.")
	assert.Contains(t, text, "Updated AAPL. Total shares: 15")

	holdings := eng.Holdings()
	require.Len(t, holdings, 2)
	assert.Equal(t, "AAPL", holdings[0].Symbol)
	assert.Equal(t, int64(15), holdings[0].Shares)
	assert.Equal(t, "TSLA", holdings[1].Symbol)
	assert.Equal(t, int64(2), holdings[1].Shares)
}

func TestMenu_InvalidChoice(t *testing.T) {
	m, _, out := newTestMenu(t, t.TempDir(), script("9", "abc", "", "5"))
	require.NoError(t, m.Run())
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid choice. Please enter a number between 1-5."))
}

func TestMenu_EmptyPortfolio(t *testing.T) {
	m, _, out := newTestMenu(t, t.TempDir(), script("3", "4", "5"))
	require.NoError(t, m.Run())
	assert.Equal(t, 2, strings.Count(out.String(), "No stocks in portfolio. Please add some stocks first."))
}

func TestMenu_CalculateValue(t *testing.T) {
	m, _, out := newTestMenu(t, t.TempDir(), script("2", "AAPL", "10", "TSLA", "2", "done", "3", "5"))
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Portfolio Summary:")
	assert.Contains(t, out.String(), "AAPL     10       $180.00    $1800.00")
	assert.Contains(t, out.String(), "$2,300.00")
}

func TestMenu_SaveFiles(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		ext      string
		wantLast string
	}{
		{"text", "1", ".txt", "TOTAL PORTFOLIO VALUE: $2300.00"},
		{"csv", "2", ".csv", "TOTAL PORTFOLIO VALUE,,,2300.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			m, _, out := newTestMenu(t, dir, script("2", "AAPL", "10", "TSLA", "2", "done", "4", tt.format, "5"))
			require.NoError(t, m.Run())

			files, err := filepath.Glob(filepath.Join(dir, "portfolio_summary_*"+tt.ext))
			require.NoError(t, err)
			require.Len(t, files, 1)
			assert.Contains(t, out.String(), "Portfolio saved to "+files[0])

			data, err := os.ReadFile(files[0])
			require.NoError(t, err)
			lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
			assert.Equal(t, tt.wantLast, lines[len(lines)-1])
		})
	}
}

func TestMenu_SaveInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	m, _, out := newTestMenu(t, dir, script("2", "AAPL", "1", "done", "4", "3", "5"))
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Invalid choice. Please enter 1 or 2.")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMenu_SaveFailureIsNotFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	m, _, out := newTestMenu(t, missing, script("2", "AAPL", "1", "done", "4", "2", "3", "5"))
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Error saving to CSV file:")
	assert.Contains(t, out.String(), "Thank you for using Stock Portfolio Tracker!")
}

func TestMenu_OversizeLineIsRejectedNotFatal(t *testing.T) {
	huge := strings.Repeat("A", 70*1024)
	m, eng, out := newTestMenu(t, t.TempDir(), script("2", huge, "AAPL", "1", "done", huge, "5"))
	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "not found in our database.")
	assert.Contains(t, out.String(), "Invalid choice. Please enter a number between 1-5.")
	assert.Contains(t, out.String(), "Thank you for using Stock Portfolio Tracker!")
	require.Len(t, eng.Holdings(), 1)
	assert.Equal(t, int64(1), eng.Holdings()[0].Shares)
}

func TestMenu_LastLineWithoutNewline(t *testing.T) {
	m, _, out := newTestMenu(t, t.TempDir(), "1\n5")
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Thank you for using Stock Portfolio Tracker!")
}
