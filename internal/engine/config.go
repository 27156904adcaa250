package engine

type ReportingConfig struct {
	outputDir string
	currency  Currency
}

func NewReportingConfig(outputDir string, currency Currency) *ReportingConfig {
	if outputDir == "" {
		outputDir = "."
	}
	return &ReportingConfig{
		outputDir: outputDir,
		currency:  currency,
	}
}
