package config

import (
	"errors"
	"fmt"
)

// Config is the top-level configuration struct for salesight.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Parser ParserConfig `mapstructure:"parser"`
	Report ReportConfig `mapstructure:"report"`
}

// ParserConfig holds ingestion settings.
type ParserConfig struct {
	// OnMalformed is the malformed-row policy: "skip" or "abort".
	OnMalformed string `mapstructure:"on_malformed"`
}

// ReportConfig holds output settings.
type ReportConfig struct {
	// Format is the report encoding: "text", "json" or "yaml".
	Format string `mapstructure:"format"`

	// NoColor suppresses ANSI colors in the text format.
	NoColor bool `mapstructure:"no_color"`
}

// Sentinel errors for configuration validation.
var (
	// ErrInvalidPolicy indicates an unknown parser.on_malformed value.
	ErrInvalidPolicy = errors.New(`parser.on_malformed must be "skip" or "abort"`)

	// ErrInvalidFormat indicates an unknown report.format value.
	ErrInvalidFormat = errors.New(`report.format must be "text", "json" or "yaml"`)
)

// Validate checks all configuration values.
func (c *Config) Validate() error {
	if c.Parser.OnMalformed != "skip" && c.Parser.OnMalformed != "abort" {
		return fmt.Errorf("%w, got %q", ErrInvalidPolicy, c.Parser.OnMalformed)
	}

	if c.Report.Format != "text" && c.Report.Format != "json" && c.Report.Format != "yaml" {
		return fmt.Errorf("%w, got %q", ErrInvalidFormat, c.Report.Format)
	}

	return nil
}
