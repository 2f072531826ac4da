package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/mktcalc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    schema.Level
		expected string
	}{
		{name: "excellent", input: schema.ExcellentLevel, expected: ExcellentValue},
		{name: "good", input: schema.GoodLevel, expected: GoodValue},
		{name: "fair", input: schema.FairLevel, expected: FairValue},
		{name: "poor", input: schema.PoorLevel, expected: PoorValue},
		{name: "empty", input: "", expected: UnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		level schema.Level
		label string
	}{
		{"excellent", schema.ExcellentLevel, ExcellentValue},
		{"good", schema.GoodLevel, GoodValue},
		{"fair", schema.FairLevel, FairValue},
		{"poor", schema.PoorLevel, PoorValue},
		{"unknown", "bogus", UnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.level)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "Mede a ...", TruncateText("Mede a proporção de pessoas", 10))
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3))
	assert.Equal(t, "proporçã...", TruncateText("proporçãoções", 11))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    schema.Values
		wantErr bool
	}{
		{"empty", "", schema.Values{}, false},
		{"blank", "   ", schema.Values{}, false},
		{"single", "clicks=20", schema.Values{"clicks": 20}, false},
		{"pair", "clicks=20,impressions=1000", schema.Values{"clicks": 20, "impressions": 1000}, false},
		{"spaces", " clicks = 20 , impressions= 1000 ", schema.Values{"clicks": 20, "impressions": 1000}, false},
		{"decimal and negative", "revenue=10.5,cost=-3", schema.Values{"revenue": 10.5, "cost": -3}, false},
		{"trailing comma", "clicks=20,", schema.Values{"clicks": 20}, false},
		{"last wins", "clicks=1,clicks=2", schema.Values{"clicks": 2}, false},
		{"missing equals", "clicks", nil, true},
		{"missing key", "=20", nil, true},
		{"not a number", "clicks=abc", nil, true},
		{"nan rejected", "clicks=NaN", nil, true},
		{"infinity rejected", "clicks=Inf", nil, true},
		{"overflow rejected", "clicks=1e400", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValues(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumber(t *testing.T) {
	v, err := ParseNumber(" 42.5 ")
	require.NoError(t, err)
	assert.Equal(t, 42.5, v)

	_, err = ParseNumber("-Infinity")
	assert.Error(t, err)
}
