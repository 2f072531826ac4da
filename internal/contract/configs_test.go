package contract

import (
	"testing"

	"github.com/huangsam/mktcalc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:  "text",
		Workers: 4,
		Color:   "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "json output", mutate: func(in *ConfigRawInput) { in.Output = "JSON" }},
		{name: "csv to file", mutate: func(in *ConfigRawInput) { in.Output = "csv"; in.OutputFile = "out.csv" }},
		{name: "parquet to file", mutate: func(in *ConfigRawInput) { in.Output = "parquet"; in.OutputFile = "out.parquet" }},
		{name: "parquet without file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "zero workers", mutate: func(in *ConfigRawInput) { in.Workers = 0 }, expectError: true},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -1 }, expectError: true},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "sometimes" }, expectError: true},
		{name: "advanced group", mutate: func(in *ConfigRawInput) { in.Group = "Advanced" }},
		{name: "invalid group", mutate: func(in *ConfigRawInput) { in.Group = "premium" }, expectError: true},
		{name: "values", mutate: func(in *ConfigRawInput) { in.Values = "clicks=20,impressions=1000" }},
		{name: "invalid values", mutate: func(in *ConfigRawInput) { in.Values = "clicks=twenty" }, expectError: true},
		{name: "min level", mutate: func(in *ConfigRawInput) { in.MinLevel = "good" }},
		{name: "invalid min level", mutate: func(in *ConfigRawInput) { in.MinLevel = "stellar" }, expectError: true},
		{name: "debug logs", mutate: func(in *ConfigRawInput) { in.LogLevel = "DEBUG" }},
		{name: "invalid log level", mutate: func(in *ConfigRawInput) { in.LogLevel = "trace" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.AllGroup, cfg.Group)
	assert.Equal(t, DefaultMinLevel, cfg.MinLevel)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.UseColors)
	assert.Empty(t, cfg.Values)
}

func TestProcessAndValidateTransfersFields(t *testing.T) {
	input := validInput()
	input.MetricID = " ctr "
	input.Values = "clicks=20,impressions=1000"
	input.Detail = true
	input.Input = " rows.csv "
	input.Color = "no"
	input.Width = 120
	input.Addr = "127.0.0.1:9090"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "ctr", cfg.MetricID)
	assert.Equal(t, schema.Values{"clicks": 20, "impressions": 1000}, cfg.Values)
	assert.True(t, cfg.Detail)
	assert.Equal(t, "rows.csv", cfg.InputFile)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{MetricID: "ctr", Values: schema.Values{"clicks": 20}}
	clone := cfg.Clone()
	clone.Values["clicks"] = 99
	clone.MetricID = "cpc"

	assert.Equal(t, 20.0, cfg.Values["clicks"])
	assert.Equal(t, "ctr", cfg.MetricID)
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "mktcalc"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "mktcalc", profile.Prefix)
}
