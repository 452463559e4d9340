package cmd

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

// Environment variables read by rkpi, and passed to its extensions.
const (
	EnvCurrency    = "REALTY_CURRENCY"
	EnvAgingBands  = "REALTY_AGING_BANDS"
	EnvHorizonMode = "REALTY_HORIZON_MODE"
	EnvFormat      = "REALTY_FORMAT"
	EnvModel       = "REALTY_GEMINI_MODEL"
	EnvVerbose     = "REALTY_VERBOSE"
)

// Config holds the defaults of the command line flags.
type Config struct {
	Currency    string `env:"CURRENCY"`
	AgingBands  string `env:"AGING_BANDS"`
	HorizonMode string `env:"HORIZON_MODE"`
	Format      string `env:"FORMAT"`
	Model       string `env:"GEMINI_MODEL"`
	Verbose     bool   `env:"VERBOSE"`
}

// DefaultConfig is used for every variable that is not set.
var DefaultConfig = Config{
	Currency:    "EUR",
	AgingBands:  "4",
	HorizonMode: "disjoint",
	Format:      FormatMarkdown,
	Model:       "gemini-2.5-flash",
}

// LoadConfig reads the REALTY_* environment variables on top of DefaultConfig.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "REALTY_"}); err != nil {
		return DefaultConfig, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var config = loadConfig()

func loadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("warning, %v, using defaults", err)
	}
	return cfg
}
