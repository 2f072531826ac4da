package schema

// CheckResult holds the results of a level gate over a batch.
type CheckResult struct {
	Passed      bool
	MinLevel    Level
	TotalRows   int
	Failures    []CheckFailure
	LevelCounts map[Level]int // Successful rows per level
}

// CheckFailure represents a row that did not meet the minimum level.
type CheckFailure struct {
	Row       int
	MetricID  string
	Formatted string
	Level     Level
	Reason    string
}
