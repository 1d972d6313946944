// Package config
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultPath is where the settings file is looked up when no
// --config flag is given.
const DefaultPath = "config.env"

type Config struct {
	LogDir        string
	RetentionDays int
	TopProcesses  int
	LogLevel      string
	LogFormat     string
	ReportIndex   bool
}

// Load reads KEY=VALUE settings from path. A missing or unreadable file
// is not an error: every key falls back to the process environment and
// then to its default. Malformed numeric values fall back too.
func Load(path string) *Config {
	values, err := godotenv.Read(path)
	if err != nil {
		values = map[string]string{}
	}

	get := func(key string) string {
		if v, ok := values[key]; ok {
			return v
		}
		return os.Getenv(key)
	}

	cfg := &Config{
		LogDir:        "./logs",
		RetentionDays: 7,
		TopProcesses:  5,
		LogLevel:      "info",
		LogFormat:     "text",
		ReportIndex:   true,
	}

	if v := get("LOG_DIR"); v != "" {
		cfg.LogDir = v
	}

	if v := get("LOG_RETENTION_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.RetentionDays = parsed
		}
	}

	if v := get("TOP_PROCESSES_COUNT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			cfg.TopProcesses = parsed
		}
	}

	if v := get("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := get("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if v := get("REPORT_INDEX"); v == "off" || v == "false" || v == "0" {
		cfg.ReportIndex = false
	}

	return cfg
}
