package cli

import (
	"fmt"
	"io"
	"os"
	"stocktracker/internal/config"
	"stocktracker/internal/engine"
	"stocktracker/internal/logger"
	"stocktracker/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "stocktracker",
		Short:        "Track a hypothetical stock portfolio and export its valuation",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			return run(wd, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// run loads the optional config from dir, wires the tracker and blocks in the menu.
func run(dir string, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{LogFile: cfg.LogFile, Development: cfg.DebugLogging})
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	assets := repository.DefaultAssets()
	if cfg.Catalog != nil {
		if assets, err = repository.AssetsFromPrices(cfg.Catalog); err != nil {
			return fmt.Errorf("config catalog: %w", err)
		}
	}
	catalog, err := repository.NewCatalog(assets)
	if err != nil {
		return err
	}

	cur, err := engine.NewCurrency(cfg.Currency)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(catalog, engine.NewReportingConfig(cfg.OutputDir, cur), log.WithComponent("engine"))
	log.Info("stocktracker started",
		zap.Int("catalog_size", catalog.Len()),
		zap.String("currency", cur.Code()),
		zap.String("output_dir", cfg.OutputDir))

	return NewMenu(eng, catalog, in, out, log.WithComponent("menu")).Run()
}
