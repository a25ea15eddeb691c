package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first; a missing file is fine.
//
// Recognized variables:
//
//	PAYGATE_BASE_URL         gateway root URL
//	PAYGATE_TIMEOUT_SECONDS  per-request timeout in seconds
//	PAYGATE_DB_PATH          sqlite credential store path
//	PAYGATE_OUTPUT           default output format
//	APP_ENV                  environment name (production enables JSON logs)
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PAYGATE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PAYGATE_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("PAYGATE_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PAYGATE_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Environment = v
	}
}
