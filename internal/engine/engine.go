package engine

import (
	"fmt"
	"stocktracker/types"
	"time"

	"go.uber.org/zap"
)

// Engine ties the catalog, the portfolio and the exporters together.
type Engine struct {
	catalog   priceCatalog
	portfolio *portfolio
	reporting *ReportingConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewEngine(catalog priceCatalog, reporting *ReportingConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog:   catalog,
		portfolio: newPortfolio(catalog),
		reporting: reporting,
		logger:    logger,
		now:       time.Now,
	}
}

func (e *Engine) AddShares(symbol string, quantity int64) (types.Holding, error) {
	h, err := e.portfolio.AddShares(symbol, quantity)
	if err != nil {
		e.logger.Warn("add shares rejected",
			zap.String("symbol", symbol),
			zap.Int64("quantity", quantity),
			zap.Error(err))
		return h, err
	}
	e.logger.Info("shares added",
		zap.String("symbol", h.Symbol),
		zap.Int64("quantity", quantity),
		zap.Int64("total_shares", h.Shares))
	return h, nil
}

func (e *Engine) IsEmpty() bool {
	return e.portfolio.IsEmpty()
}

func (e *Engine) Holdings() []types.Holding {
	return e.portfolio.Holdings()
}

func (e *Engine) Currency() Currency {
	return e.reporting.currency
}

// Valuation prices the current holdings against the catalog.
func (e *Engine) Valuation() (types.Valuation, error) {
	v, err := ComputeValuation(e.portfolio.Holdings(), e.catalog, e.now())
	if err != nil {
		return types.Valuation{}, err
	}
	e.logger.Debug("portfolio valued",
		zap.Int("holdings", len(v.Rows)),
		zap.String("total", v.Total.String()))
	return v, nil
}

func (e *Engine) ExportText(v types.Valuation) (string, error) {
	return e.Export(FormatText, v)
}

func (e *Engine) ExportCSV(v types.Valuation) (string, error) {
	return e.Export(FormatCSV, v)
}

// Export writes v to a timestamped file in the output directory and returns its path.
func (e *Engine) Export(format ExportFormat, v types.Valuation) (string, error) {
	path := exportFilename(e.reporting.outputDir, format, v.Time)

	var err error
	switch format {
	case FormatText:
		err = writeTextFile(path, v, e.reporting.currency)
	case FormatCSV:
		err = writeCSVFile(path, v, e.reporting.currency)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		err = wrapExportErr(path, err)
		e.logger.Error("export failed", zap.String("file", path), zap.Error(err))
		return "", err
	}

	e.logger.Info("portfolio exported",
		zap.String("file", path),
		zap.String("format", string(format)),
		zap.Int("rows", len(v.Rows)),
		zap.String("total", v.Total.String()))
	return path, nil
}
