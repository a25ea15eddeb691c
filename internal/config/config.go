// Package config holds runtime settings for the paygate CLI.
package config

import "time"

// Config holds the settings every component reads at startup.
//
// Fields:
//   - BaseURL: root of the gateway REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - DBPath: sqlite file holding the persisted credential.
//   - Environment: "production" switches logging to JSON.
//   - Output: default rendering for listings (table, json, yaml).
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DBPath         string
	Environment    string
	Output         string
}

// Overrides carries explicit values (typically command-line flags) applied
// last, over every other source. Zero values mean "not set".
type Overrides struct {
	BaseURL        string
	TimeoutSeconds int
	DBPath         string
	Output         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 30 * time.Second
	c.DBPath = "paygate.db"
	c.Environment = "development"
	c.Output = "table"
}

// Load constructs a Config, applies defaults, then overlays values from the
// environment (including a .env file if present), a JSON config file (if
// given), and finally the explicit overrides. Later sources take precedence
// over earlier ones.
func Load(jsonPath string, ov Overrides) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	parseEnv(cfg)

	if err := parseJSON(cfg, jsonPath); err != nil {
		return nil, err
	}

	if ov.BaseURL != "" {
		cfg.BaseURL = ov.BaseURL
	}
	if ov.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(ov.TimeoutSeconds) * time.Second
	}
	if ov.DBPath != "" {
		cfg.DBPath = ov.DBPath
	}
	if ov.Output != "" {
		cfg.Output = ov.Output
	}

	return cfg, nil
}
