package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/huangsam/mktcalc/core/algo"
	"github.com/huangsam/mktcalc/core/catalog"
	"github.com/huangsam/mktcalc/schema"
)

// ErrMetricNotFound is returned when no metric in the catalog has the requested id.
var ErrMetricNotFound = errors.New("metric not found")

// noAnalysisOverview is shown when a metric defines no detailed analysis.
const noAnalysisOverview = "Análise não disponível para esta métrica."

// FormatResult renders a computed value with the metric's display rule.
func FormatResult(m schema.Metric, v float64) string {
	return m.Format.Render(v)
}

// Classify returns the comment tier that v falls into.
func Classify(m schema.Metric, v float64) schema.Tier {
	return algo.Classify(m.Tiers, v)
}

// Comment returns the canned commentary for v.
func Comment(m schema.Metric, v float64) string {
	return Classify(m, v).Text
}

// DetailedAnalysis builds the overview, insights and recommendations for v.
// Metrics without analysis rules get a fixed fallback with empty lists.
func DetailedAnalysis(m schema.Metric, v float64, values schema.Values) schema.Analysis {
	rules := m.Analysis
	if rules == nil || rules.Overview == nil {
		return schema.Analysis{
			Overview:        noAnalysisOverview,
			Insights:        []string{},
			Recommendations: []string{},
		}
	}

	label := algo.Classify(rules.Tiers, v).Text
	insights := []string{}
	if rules.Insights != nil {
		insights = rules.Insights(v, label, values)
	}
	recommendations := slices.Clone(rules.Recommendations)
	if recommendations == nil {
		recommendations = []string{}
	}

	return schema.Analysis{
		Overview:        rules.Overview(v, label, values),
		Insights:        insights,
		Recommendations: recommendations,
	}
}

// EvaluateMetric computes a metric against the values and derives every
// presentation of the result. It never fails: missing inputs surface as NaN
// and zero divisors as an infinity.
func EvaluateMetric(m schema.Metric, values schema.Values) schema.Result {
	in := values.Clone()
	v := m.Calculate(in)
	tier := Classify(m, v)

	return schema.Result{
		MetricID:  m.ID,
		Name:      m.Name,
		Values:    in,
		Value:     schema.Number(v),
		Formatted: FormatResult(m, v),
		Level:     tier.Level,
		Comment:   tier.Text,
		Analysis:  DetailedAnalysis(m, v, in),
	}
}

// MissingFields returns the metric's field IDs absent from values, in declaration order.
func MissingFields(m schema.Metric, values schema.Values) []string {
	var missing []string
	for _, id := range m.FieldIDs() {
		if _, ok := values[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Evaluate looks up a metric by id and evaluates it.
func Evaluate(id string, values schema.Values) (schema.Result, error) {
	m, ok := catalog.FindByID(id)
	if !ok {
		return schema.Result{}, fmt.Errorf("%w: %s", ErrMetricNotFound, id)
	}
	return EvaluateMetric(m, values), nil
}

// ListMetrics returns the summary cards for a catalog group.
func ListMetrics(group schema.Group) ([]schema.Summary, error) {
	return catalog.List(group)
}

// Describe returns the printable definition of a metric.
func Describe(id string) (schema.MetricDescription, error) {
	m, ok := catalog.FindByID(id)
	if !ok {
		return schema.MetricDescription{}, fmt.Errorf("%w: %s", ErrMetricNotFound, id)
	}
	return describeMetric(m), nil
}

func describeMetric(m schema.Metric) schema.MetricDescription {
	desc := schema.MetricDescription{
		Summary:     m.Summary(),
		Explanation: m.Explanation,
		Formula:     m.Formula,
		Fields:      slices.Clone(m.Fields),
		Format:      m.Format,
		Tiers:       schema.TierRows(m.Tiers),
	}
	if m.Analysis != nil {
		desc.AnalysisTiers = schema.TierRows(m.Analysis.Tiers)
		desc.Recommendations = slices.Clone(m.Analysis.Recommendations)
	}
	return desc
}
