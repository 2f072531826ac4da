// Package schema has models, enums and formatting rules for all parts of mktcalc.
package schema

import (
	"maps"
	"math"
)

// Values maps a field ID to the number a user supplied for it.
type Values map[string]float64

// Get returns the value stored for id. A missing id yields NaN so that
// incomplete input flows through the arithmetic instead of failing.
func (v Values) Get(id string) float64 {
	if f, ok := v[id]; ok {
		return f
	}
	return math.NaN()
}

// Clone returns a shallow copy of the values.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	return maps.Clone(v)
}

// MetricField describes one numeric input required by a metric.
type MetricField struct {
	ID          string `json:"id"`          // Key into Values, unique within a metric
	Label       string `json:"label"`       // Human-readable prompt
	Placeholder string `json:"placeholder"` // Example value shown to the user
}

// Metric is a declarative record for a single marketing metric.
// Calculate is the closed-form formula; everything else is data.
type Metric struct {
	ID          string        `json:"id"`
	Group       Group         `json:"group"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Explanation string        `json:"explanation"`
	Fields      []MetricField `json:"fields"`
	Formula     string        `json:"formula"`
	Format      Format        `json:"format"`
	Tiers       []Tier        `json:"tiers"`

	Calculate func(in Values) float64 `json:"-"`
	Analysis  *AnalysisSpec           `json:"-"` // nil when no detailed analysis exists
}

// Summary returns the catalog card for the metric.
func (m Metric) Summary() Summary {
	return Summary{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Group:       m.Group,
	}
}

// FieldIDs returns the IDs of the metric's inputs in declaration order.
func (m Metric) FieldIDs() []string {
	ids := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		ids[i] = f.ID
	}
	return ids
}

// AnalysisSpec holds the rules for a metric's detailed analysis.
// Tiers picks the performance label that Overview and Insights interpolate.
type AnalysisSpec struct {
	Tiers           []Tier
	Overview        func(value float64, label string, in Values) string
	Insights        func(value float64, label string, in Values) []string
	Recommendations []string
}

// Analysis is the structured narrative produced for a computed value.
type Analysis struct {
	Overview        string   `json:"overview"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// Summary is the short card returned when listing metrics.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Group       Group  `json:"group"`
}
