package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"stocktracker/internal/engine"
	"stocktracker/types"
	"strings"

	"go.uber.org/zap"
)

type assetCatalog interface {
	Assets() []types.Asset
	GetAssetByTicker(ticker string) (*types.Asset, error)
}

// errQuit ends the menu loop: either Exit was chosen or input ran out.
var errQuit = errors.New("quit")

type menuOption struct {
	key    string
	label  string
	action func() error
}

// Menu is the interactive read-eval loop over a line-oriented input.
type Menu struct {
	engine  *engine.Engine
	catalog assetCatalog
	in      *bufio.Reader
	out     io.Writer
	style   styles
	logger  *zap.Logger
	options []menuOption
}

func NewMenu(eng *engine.Engine, catalog assetCatalog, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Menu{
		engine:  eng,
		catalog: catalog,
		in:      bufio.NewReader(in),
		out:     out,
		style:   newStyles(out),
		logger:  logger,
	}
	m.options = []menuOption{
		{"1", "View available stocks", m.viewCatalog},
		{"2", "Add stocks to portfolio", m.addStocks},
		{"3", "Calculate portfolio value", m.showValuation},
		{"4", "Save portfolio to file", m.save},
		{"5", "Exit", m.exit},
	}
	return m
}

// Run blocks until Exit is chosen or the input is exhausted.
func (m *Menu) Run() error {
	m.println(m.style.title.Render("🚀 Welcome to Stock Portfolio Tracker!"))
	m.println(strings.Repeat("=", 40))

	for {
		m.println("\nWhat would you like to do?")
		for _, opt := range m.options {
			m.printf("%s. %s\n", opt.key, opt.label)
		}

		m.println("")
		choice, err := m.prompt(fmt.Sprintf("Enter your choice (1-%d): ", len(m.options)))
		if err != nil {
			return m.finish(err)
		}

		opt, ok := m.lookup(choice)
		if !ok {
			m.fail(fmt.Sprintf("Invalid choice. Please enter a number between 1-%d.", len(m.options)))
			continue
		}
		if err := opt.action(); err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) lookup(choice string) (menuOption, bool) {
	for _, opt := range m.options {
		if opt.key == choice {
			return opt, true
		}
	}
	return menuOption{}, false
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (m *Menu) viewCatalog() error {
	cur := m.engine.Currency()
	m.println("")
	m.println(m.style.heading.Render("📈 Available Stocks:"))
	m.println(strings.Repeat("-", 30))
	for _, a := range m.catalog.Assets() {
		m.printf("%s: %s\n", a.Ticker, cur.Format(a.Price))
	}
	m.println(strings.Repeat("-", 30))
	return nil
}

func (m *Menu) addStocks() error {
	if m.engine.IsEmpty() {
		if err := m.viewCatalog(); err != nil {
			return err
		}
	}

	for {
		m.println("")
		raw, err := m.prompt("Enter stock symbol (or 'done' to finish): ")
		if err != nil {
			return err
		}
		symbol := strings.ToUpper(raw)
		if symbol == "DONE" {
			return nil
		}
		asset, err := m.catalog.GetAssetByTicker(symbol)
		if err != nil {
			m.logger.Debug("symbol lookup failed", zap.Error(err))
			m.fail(fmt.Sprintf("Stock '%s' not found in our database.", symbol))
			continue
		}
		symbol = asset.Ticker

		rawQty, err := m.prompt(fmt.Sprintf("Enter quantity of %s shares: ", symbol))
		if err != nil {
			return err
		}
		qty, err := engine.ParseQuantity(rawQty)
		if err != nil {
			m.rejectQuantity(err)
			continue
		}

		h, err := m.engine.AddShares(symbol, qty)
		switch {
		case err != nil:
			m.fail(err.Error())
		case h.Shares == qty:
			m.succeed(fmt.Sprintf("Added %d shares of %s to portfolio.", qty, h.Symbol))
		default:
			m.succeed(fmt.Sprintf("Updated %s. Total shares: %d", h.Symbol, h.Shares))
		}
	}
}

func (m *Menu) rejectQuantity(err error) {
	if errors.Is(err, engine.ErrQuantityNotPositive) {
		m.fail("Quantity must be a positive number.")
		return
	}
	m.fail("Please enter a valid number for quantity.")
}

func (m *Menu) showValuation() error {
	m.valuation()
	return nil
}

// valuation prints the summary table and returns what was printed.
func (m *Menu) valuation() (types.Valuation, bool) {
	if m.engine.IsEmpty() {
		m.fail("No stocks in portfolio. Please add some stocks first.")
		return types.Valuation{}, false
	}
	v, err := m.engine.Valuation()
	if err != nil {
		m.logger.Error("valuation failed", zap.Error(err))
		m.fail(fmt.Sprintf("Error calculating portfolio value: %v", err))
		return types.Valuation{}, false
	}

	m.println("")
	m.println(m.style.heading.Render("📊 Portfolio Summary:"))
	if err := engine.WriteSummary(m.out, v, m.engine.Currency()); err != nil {
		m.logger.Warn("write summary", zap.Error(err))
	}
	return v, true
}

func (m *Menu) save() error {
	v, ok := m.valuation()
	if !ok {
		return nil
	}

	m.println("")
	choice, err := m.prompt("Save as (1) TXT or (2) CSV? Enter 1 or 2: ")
	if err != nil {
		return err
	}

	var path string
	switch choice {
	case "1":
		path, err = m.engine.ExportText(v)
		if err != nil {
			m.fail(fmt.Sprintf("Error saving to text file: %v", err))
			return nil
		}
	case "2":
		path, err = m.engine.ExportCSV(v)
		if err != nil {
			m.fail(fmt.Sprintf("Error saving to CSV file: %v", err))
			return nil
		}
	default:
		m.fail("Invalid choice. Please enter 1 or 2.")
		return nil
	}
	m.succeed(fmt.Sprintf("Portfolio saved to %s", path))
	return nil
}

func (m *Menu) exit() error {
	m.println("👋 Thank you for using Stock Portfolio Tracker!")
	return errQuit
}

// prompt writes label and reads one trimmed line. End of input returns errQuit.
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", m.style.prompt.Render(label))
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		// a last line without a trailing newline is still an answer
		if line == "" {
			m.println("")
			m.logger.Info("input closed")
			return "", errQuit
		}
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) succeed(msg string) {
	m.println(m.style.success.Render("✅ " + msg))
}

func (m *Menu) fail(msg string) {
	m.println(m.style.failure.Render("❌ " + msg))
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
