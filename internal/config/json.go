package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// given in whole seconds; values are copied into the runtime Config (which
// uses time.Duration).
type jsonConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	DBPath         string `json:"db_path"`
	Environment    string `json:"environment"`
	Output         string `json:"output"`
}

// parseJSON overlays Config with values loaded from the JSON file at path.
// An empty path means no JSON source is used. Only fields present in the
// file override earlier sources.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.TimeoutSeconds) * time.Second
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.Environment != "" {
		cfg.Environment = jc.Environment
	}
	if jc.Output != "" {
		cfg.Output = jc.Output
	}
	return nil
}
