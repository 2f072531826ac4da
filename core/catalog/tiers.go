package catalog

import "github.com/huangsam/mktcalc/schema"

func atLeast(bound float64, level schema.Level, text string) schema.Tier {
	return schema.Tier{Op: schema.AtLeast, Bound: bound, Level: level, Text: text}
}

func atMost(bound float64, level schema.Level, text string) schema.Tier {
	return schema.Tier{Op: schema.AtMost, Bound: bound, Level: level, Text: text}
}

func above(bound float64, level schema.Level, text string) schema.Tier {
	return schema.Tier{Op: schema.Above, Bound: bound, Level: level, Text: text}
}

func otherwise(level schema.Level, text string) schema.Tier {
	return schema.Tier{Op: schema.Otherwise, Level: level, Text: text}
}

// Shorthands used inside interpolated analysis text.
var (
	fixed = schema.Fixed
	num   = schema.JSNumber
	round = schema.RoundHalfUp
	title = schema.Capitalize
)
