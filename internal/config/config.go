// Package config reads tablebuilder settings from the environment. Command
// line flags override these values.
package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DatabaseURL string
	Prefix      string
	Collation   string
	LogLevel    string
	LogFormat   string
}

func Load() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("TABLEBUILDER_DB_URL"),
		Prefix:      os.Getenv("TABLEBUILDER_PREFIX"),
		Collation:   os.Getenv("TABLEBUILDER_COLLATION"),
		LogLevel:    getEnv("TABLEBUILDER_LOG_LEVEL", "info"),
		LogFormat:   getEnv("TABLEBUILDER_LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn or error)", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (must be text or json)", c.LogFormat)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
