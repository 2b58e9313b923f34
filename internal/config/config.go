package config

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded once at startup from the KASIR_* environment.
//
// The remote fields (SheetID, FinanceSheetID, EndpointURL, APIToken) may all
// be empty: that is a valid configuration, and downstream code treats the
// empty endpoint as the signal to use the flat-file and built-in catalog
// sources and to refuse transaction submission.
type Config struct {
	SheetID        string  `envconfig:"SHEET_ID"`
	FinanceSheetID string  `envconfig:"FINANCE_SHEET_ID"`
	EndpointURL    string  `envconfig:"ENDPOINT_URL"`
	APIToken       string  `envconfig:"API_TOKEN"`
	TaxRate        float64 `envconfig:"TAX_RATE" default:"0.11"`
	CatalogURL     string  `envconfig:"CATALOG_URL"`
	CatalogFile    string  `envconfig:"CATALOG_FILE" default:"data/products.csv"`
	HTTPAddr       string  `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the environment. It never fails the caller: a malformed
// environment degrades to the zero-value configuration, which selects the
// fallback catalog path everywhere.
func Load(log *slog.Logger) Config {
	var cfg Config
	if err := envconfig.Process("KASIR", &cfg); err != nil {
		log.Warn("config load failed, continuing with empty configuration", "err", err)
		return Config{TaxRate: 0.11}
	}
	return cfg
}
