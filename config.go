// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// log levels accepted in the client configuration
const (
	logLevelOff   = "OFF"
	logLevelError = "ERROR"
	logLevelWarn  = "WARN"
	logLevelInfo  = "INFO"
	logLevelDebug = "DEBUG"
	logLevelTrace = "TRACE"
)

const (
	defaultPrefetchRows   = 32
	defaultFieldChunkSize = defaultChunkHint
)

// ClientConfig tunes the result layer. All fields are optional; zero
// values fall back to defaults.
type ClientConfig struct {
	// LogLevel sets the package log level when the config is applied.
	LogLevel string `toml:"log_level"`
	// PrefetchRows is the number of rows loaded into the cache per batch.
	PrefetchRows int `toml:"prefetch_rows"`
	// FieldChunkSize is the per-call byte hint returned to the transport
	// while streaming field data.
	FieldChunkSize int `toml:"field_chunk_size"`
}

// LoadClientConfig returns the client configuration loaded from the given
// TOML file.
func LoadClientConfig(filePath string) (*ClientConfig, error) {
	if filePath == "" {
		return nil, errors.New("client config file path is empty")
	}
	var cfg ClientConfig
	if _, err := toml.DecodeFile(filePath, &cfg); err != nil {
		return nil, parsingClientConfigError(err)
	}
	if err := validateClientConfig(&cfg); err != nil {
		return nil, parsingClientConfigError(err)
	}
	return &cfg, nil
}

func parsingClientConfigError(err error) error {
	return fmt.Errorf("parsing client config failed: %w", err)
}

func validateClientConfig(cfg *ClientConfig) error {
	if cfg.LogLevel != "" {
		if _, err := toLogLevel(cfg.LogLevel); err != nil {
			return err
		}
	}
	if cfg.PrefetchRows < 0 {
		return fmt.Errorf("prefetch_rows must not be negative: %v", cfg.PrefetchRows)
	}
	if cfg.FieldChunkSize < 0 {
		return fmt.Errorf("field_chunk_size must not be negative: %v", cfg.FieldChunkSize)
	}
	return nil
}

func toLogLevel(logLevelString string) (string, error) {
	logLevel := strings.ToUpper(logLevelString)
	switch logLevel {
	case logLevelOff, logLevelError, logLevelWarn, logLevelInfo, logLevelDebug, logLevelTrace:
		return logLevel, nil
	default:
		return "", errors.New("unknown log level: " + logLevelString)
	}
}

// Apply installs the configured log level on the package logger.
func (c *ClientConfig) Apply() error {
	if c == nil || c.LogLevel == "" {
		return nil
	}
	level, err := toLogLevel(c.LogLevel)
	if err != nil {
		return err
	}
	return logger.SetLogLevel(level)
}

// withDefaults returns a copy with defaults filled in; a nil receiver
// yields the full default configuration.
func (c *ClientConfig) withDefaults() ClientConfig {
	var cfg ClientConfig
	if c != nil {
		cfg = *c
	}
	if cfg.PrefetchRows <= 0 {
		cfg.PrefetchRows = defaultPrefetchRows
	}
	if cfg.FieldChunkSize <= 0 {
		cfg.FieldChunkSize = defaultFieldChunkSize
	}
	return cfg
}
