package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/spf13/viper"
)

type Config struct {
	OutputDir    string `mapstructure:"output_dir"`
	Currency     string `mapstructure:"currency"`
	LogFile      string `mapstructure:"log_file"`
	DebugLogging bool   `mapstructure:"debug_logging"`
	// Catalog replaces the built-in price table when set. Tickers are upper-cased.
	Catalog map[string]string `mapstructure:"-"`
}

const (
	FileName         = "stocktracker"
	DefaultOutputDir = "."
	DefaultCurrency  = "USD"
	// no log file unless configured; the working directory only gets exports
	DefaultLogFile   = ""
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads stocktracker.yaml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	defaults := map[string]interface{}{
		"output_dir":    DefaultOutputDir,
		"currency":      DefaultCurrency,
		"log_file":      DefaultLogFile,
		"debug_logging": false,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if v.IsSet("catalog") {
		cfg.Catalog = v.GetStringMapString("catalog")
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if money.GetCurrency(cfg.Currency) == nil {
		return fmt.Errorf("currency %q: %w", cfg.Currency, ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return fmt.Errorf("output_dir is empty: %w", ErrInvalidConfig)
	}
	if cfg.Catalog != nil && len(cfg.Catalog) == 0 {
		return fmt.Errorf("catalog is empty: %w", ErrInvalidConfig)
	}
	return nil
}
