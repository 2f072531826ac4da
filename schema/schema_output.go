package schema

import (
	"encoding/json"
	"math"
)

// Number is a float64 that survives JSON encoding when it is not finite.
// NaN and the infinities are written as the strings "NaN", "Infinity" and
// "-Infinity".
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(JSNumber(f))
	}
	return json.Marshal(f)
}

// Float returns the underlying value.
func (n Number) Float() float64 {
	return float64(n)
}

// Result is everything produced by evaluating one metric against one set of values.
type Result struct {
	MetricID  string   `json:"metric_id"`
	Name      string   `json:"name"`
	Values    Values   `json:"values"`
	Value     Number   `json:"value"`
	Formatted string   `json:"formatted"`
	Level     Level    `json:"level"`
	Comment   string   `json:"comment"`
	Analysis  Analysis `json:"analysis"`
}

// TierRow is a display form of a Tier.
type TierRow struct {
	Condition string `json:"condition"`
	Level     Level  `json:"level"`
	Text      string `json:"text"`
}

// MetricDescription is the full, printable definition of a metric.
type MetricDescription struct {
	Summary
	Explanation     string        `json:"explanation"`
	Formula         string        `json:"formula"`
	Fields          []MetricField `json:"fields"`
	Format          Format        `json:"format"`
	Tiers           []TierRow     `json:"tiers"`
	AnalysisTiers   []TierRow     `json:"analysis_tiers,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// TierRows converts a tier table to its display form.
func TierRows(tiers []Tier) []TierRow {
	rows := make([]TierRow, len(tiers))
	for i, t := range tiers {
		rows[i] = TierRow{Condition: t.Condition(), Level: t.Level, Text: t.Text}
	}
	return rows
}

// BatchRequest is one row of a batch input file.
type BatchRequest struct {
	MetricID string `json:"metric" yaml:"metric"`
	Values   Values `json:"values" yaml:"values"`
}

// BatchResult pairs a batch request with its outcome. Row is 1-based.
type BatchResult struct {
	Row     int          `json:"row"`
	Request BatchRequest `json:"request"`
	Result  *Result      `json:"result,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// OK reports whether the row evaluated successfully.
func (b BatchResult) OK() bool {
	return b.Result != nil && b.Error == ""
}
