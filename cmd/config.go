package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the application configuration, read from the environment with an
// optional .env file next to the binary.
type Config struct {
	APIKey            string `env:"T212_API_KEY"`
	ReportingCurrency string `env:"REPORTING_CURRENCY" envDefault:"GBP"`
	TickerOverrides   string `env:"TICKER_OVERRIDES_FILE" envDefault:"custom_tickers.json"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty         bool   `env:"LOG_PRETTY" envDefault:"true"`
}

// LoadConfig reads the configuration. A missing .env file is fine, a missing
// API key is not.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
