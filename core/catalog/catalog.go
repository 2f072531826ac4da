// Package catalog is the fixed, ordered registry of marketing metrics.
package catalog

import (
	"fmt"
	"slices"

	"github.com/huangsam/mktcalc/schema"
)

// index maps a metric ID to its position in All(). Built once at init.
var index = buildIndex()

func buildIndex() map[string]int {
	idx := make(map[string]int, len(commonMetrics)+len(advancedMetrics))
	for i, m := range All() {
		if _, ok := idx[m.ID]; !ok {
			idx[m.ID] = i
		}
	}
	return idx
}

// Common returns the common metrics in display order.
func Common() []schema.Metric {
	return slices.Clone(commonMetrics)
}

// Advanced returns the advanced metrics in display order.
func Advanced() []schema.Metric {
	return slices.Clone(advancedMetrics)
}

// All returns the common metrics followed by the advanced ones.
func All() []schema.Metric {
	return slices.Concat(commonMetrics, advancedMetrics)
}

// ByGroup returns the metrics of a group. An empty group means all.
func ByGroup(group schema.Group) ([]schema.Metric, error) {
	switch group {
	case schema.CommonGroup:
		return Common(), nil
	case schema.AdvancedGroup:
		return Advanced(), nil
	case schema.AllGroup, "":
		return All(), nil
	default:
		return nil, fmt.Errorf("unknown group '%s'", group)
	}
}

// FindByID looks up a metric across the whole catalog.
func FindByID(id string) (schema.Metric, bool) {
	i, ok := index[id]
	if !ok {
		return schema.Metric{}, false
	}
	if i < len(commonMetrics) {
		return commonMetrics[i], true
	}
	return advancedMetrics[i-len(commonMetrics)], true
}

// List returns the summary cards of a group in declaration order.
func List(group schema.Group) ([]schema.Summary, error) {
	metrics, err := ByGroup(group)
	if err != nil {
		return nil, err
	}
	summaries := make([]schema.Summary, len(metrics))
	for i, m := range metrics {
		summaries[i] = m.Summary()
	}
	return summaries, nil
}

// IDs returns every metric ID in declaration order.
func IDs() []string {
	ids := make([]string, 0, len(index))
	for _, m := range All() {
		ids = append(ids, m.ID)
	}
	return ids
}
