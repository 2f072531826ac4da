// Package algo has the pure classification and ranking rules used by core.
package algo

import "github.com/huangsam/mktcalc/schema"

// Classify walks an ordered tier table and returns the first row that
// matches v. Catalog tables end with an Otherwise row, so a zero Tier is
// only returned for an empty or malformed table.
func Classify(tiers []schema.Tier, v float64) schema.Tier {
	for _, t := range tiers {
		if t.Matches(v) {
			return t
		}
	}
	return schema.Tier{}
}

// HasFallback reports whether the table ends with an Otherwise row.
func HasFallback(tiers []schema.Tier) bool {
	return len(tiers) > 0 && tiers[len(tiers)-1].Op == schema.Otherwise
}
