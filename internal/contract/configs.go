package contract

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/huangsam/mktcalc/schema"
)

// Default values for configuration.
const (
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
	DefaultMinLevel = schema.FairLevel
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ValidLogLevels lists the log levels accepted by the server logger.
var ValidLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a command.
// This struct remains the "final, validated" config.
type Config struct {
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	Workers    int
	Detail     bool // Include the detailed analysis in results

	Group    schema.Group
	MetricID string
	Values   schema.Values

	InputFile string
	MinLevel  schema.Level

	Addr     string
	LogLevel string

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	MetricID string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Workers    int    `mapstructure:"workers"`
	Color      string `mapstructure:"color"`

	// --- Fields from listCmd.Flags() ---
	Group string `mapstructure:"group"`

	// --- Fields from evaluateCmd.Flags() ---
	Values string `mapstructure:"values"`
	Detail bool   `mapstructure:"detail"`

	// --- Fields from batchCmd.Flags() and checkCmd.Flags() ---
	Input    string `mapstructure:"input"`
	MinLevel string `mapstructure:"min-level"`

	// --- Fields from serveCmd.Flags() ---
	Addr     string `mapstructure:"addr"`
	LogLevel string `mapstructure:"log-level"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Values != nil {
		clone.Values = c.Values.Clone()
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processEvaluationInputs(cfg, input); err != nil {
		return err
	}
	if err := processServerInputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.InputFile = strings.TrimSpace(input.Input)

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	return nil
}

// processEvaluationInputs handles the group, metric, values and level inputs.
func processEvaluationInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.MetricID = strings.TrimSpace(input.MetricID)

	cfg.Group = schema.Group(strings.ToLower(strings.TrimSpace(input.Group)))
	if cfg.Group == "" {
		cfg.Group = schema.AllGroup
	}
	if _, ok := schema.ValidGroups[cfg.Group]; !ok {
		return fmt.Errorf("invalid group '%s'. must be common, advanced, all", input.Group)
	}

	values, err := ParseValues(input.Values)
	if err != nil {
		return fmt.Errorf("invalid --values format: %w", err)
	}
	cfg.Values = values

	cfg.MinLevel = schema.Level(strings.ToLower(strings.TrimSpace(input.MinLevel)))
	if cfg.MinLevel == "" {
		cfg.MinLevel = DefaultMinLevel
	}
	if _, ok := schema.ValidLevels[cfg.MinLevel]; !ok {
		return fmt.Errorf("invalid min level '%s'. must be excellent, good, fair, poor", input.MinLevel)
	}

	return nil
}

// processServerInputs handles the listen address and log level.
func processServerInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Addr = strings.TrimSpace(input.Addr)
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, ok := ValidLogLevels[cfg.LogLevel]; !ok {
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warn, error", input.LogLevel)
	}

	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
