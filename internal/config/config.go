package config

import (
	"log"
	"os"
	"strconv"
)

// DefaultTaxRate is applied when TAX_RATE is not set.
const DefaultTaxRate = 0.18

type Config struct {
	Port        string
	DatabaseURL string
	TaxRate     float64
	CORSOrigin  string
}

func Load() Config {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TaxRate:     DefaultTaxRate,
		CORSOrigin:  getenv("CORS_ORIGIN", "http://localhost:3000"),
	}

	if raw := os.Getenv("TAX_RATE"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 {
			log.Printf("Invalid TAX_RATE %q, falling back to %.2f", raw, DefaultTaxRate)
		} else {
			cfg.TaxRate = rate
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
