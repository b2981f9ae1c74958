// Package config loads runtime configuration from the environment. All
// settings live on the Config struct handed to the components that need
// them; there is no package-level mutable state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every knob of the exporter and the API server.
type Config struct {
	BaseURL      string
	SnapshotPath string
	PageSize     int
	HTTPTimeout  time.Duration
	DatabaseURL  string // optional Postgres sink; empty disables it
	Port         string
}

// Load reads environment variables, falling back to defaults suitable for a
// one-shot export. A .env file in the working directory is honored when
// present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:      "https://utdirect.utexas.edu/apps/hr/payplan/nlogon/profiles/datatable/data/",
		SnapshotPath: "data/ut-austin_pay-plan.json",
		PageSize:     100,
		HTTPTimeout:  15 * time.Second,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Port:         "8080",
	}

	if v := os.Getenv("PAYPLAN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PAYPLAN_OUTPUT"); v != "" {
		cfg.SnapshotPath = v
	}
	if v := os.Getenv("PAYPLAN_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("PAYPLAN_PAGE_SIZE must be a positive integer, got %q", v)
		}
		cfg.PageSize = n
	}
	if v := os.Getenv("PAYPLAN_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("PAYPLAN_HTTP_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	return cfg, nil
}

// CSVPath is the snapshot path with its extension swapped for .csv.
func (c *Config) CSVPath() string {
	return swapExt(c.SnapshotPath, ".csv")
}

// XLSXPath is the snapshot path with its extension swapped for .xlsx.
func (c *Config) XLSXPath() string {
	return swapExt(c.SnapshotPath, ".xlsx")
}

func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
