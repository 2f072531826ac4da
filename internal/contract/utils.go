package contract

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/mktcalc/schema"
)

// Level label constants.
const (
	ExcellentValue = "Excellent"
	GoodValue      = "Good"
	FairValue      = "Fair"
	PoorValue      = "Poor"
	UnknownValue   = "Unknown"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // strong positive signal
	GoodColor      = color.New(color.FgCyan)
	FairColor      = color.New(color.FgYellow) // standard caution, not bold
	PoorColor      = color.New(color.FgRed, color.Bold)
)

// GetPlainLabel returns a plain text label for a level. This is the core
// logic used for CSV, JSON, and table printing.
func GetPlainLabel(level schema.Level) string {
	switch level {
	case schema.ExcellentLevel:
		return ExcellentValue
	case schema.GoodLevel:
		return GoodValue
	case schema.FairLevel:
		return FairValue
	case schema.PoorLevel:
		return PoorValue
	default:
		return UnknownValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(level schema.Level) string {
	text := GetPlainLabel(level)

	switch level {
	case schema.ExcellentLevel:
		return ExcellentColor.Sprint(text)
	case schema.GoodLevel:
		return GoodColor.Sprint(text)
	case schema.FairLevel:
		return FairColor.Sprint(text)
	case schema.PoorLevel:
		return PoorColor.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateText shortens text to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseValues parses a string like "clicks=20,impressions=1000" into metric values.
// Every value must be a finite number. An empty string yields empty values.
func ParseValues(s string) (schema.Values, error) {
	values := schema.Values{}
	if strings.TrimSpace(s) == "" {
		return values, nil
	}

	for pair := range strings.SplitSeq(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		v, err := ParseNumber(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		values[key] = v
	}
	return values, nil
}

// ParseNumber parses a finite float from user input.
func ParseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", strings.TrimSpace(raw))
	}
	if err := CheckFinite(v); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckFinite rejects NaN and the infinities.
func CheckFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("number must be finite (received %s)", schema.JSNumber(v))
	}
	return nil
}
