package schema

import "fmt"

// Tier is one row of an ordered classification table. Tables are read
// top-down and the first matching row wins.
type Tier struct {
	Op    TierOp  `json:"op"`
	Bound float64 `json:"bound"`
	Level Level   `json:"level"`
	Text  string  `json:"text"`
}

// Matches reports whether v satisfies the tier's predicate.
// NaN never satisfies a numeric comparison, so it falls through to the
// Otherwise row.
func (t Tier) Matches(v float64) bool {
	switch t.Op {
	case AtLeast:
		return v >= t.Bound
	case AtMost:
		return v <= t.Bound
	case Above:
		return v > t.Bound
	case Otherwise:
		return true
	default:
		return false
	}
}

// Condition renders the predicate for display, e.g. ">= 2" or "otherwise".
func (t Tier) Condition() string {
	if t.Op == Otherwise {
		return string(Otherwise)
	}
	return fmt.Sprintf("%s %s", t.Op, JSNumber(t.Bound))
}

// Format is the display rule for a computed value.
type Format struct {
	Prefix   string `json:"prefix,omitempty"`
	Suffix   string `json:"suffix,omitempty"`
	Decimals int    `json:"decimals"`
}

// Render formats v with fixed decimals and the prefix/suffix decoration.
// Non-finite values keep the decoration, e.g. "Infinity%" or "R$ NaN".
func (f Format) Render(v float64) string {
	return f.Prefix + Fixed(v, f.Decimals) + f.Suffix
}
