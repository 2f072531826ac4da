package core

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/mktcalc/core/algo"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/schema"
)

// maxFailuresShown caps the failure rows printed by a check.
const maxFailuresShown = 5

// Check gates a batch on a minimum level. It passes only when every row
// evaluated and ranks at or above minLevel.
func Check(results []schema.BatchResult, minLevel schema.Level) schema.CheckResult {
	check := schema.CheckResult{
		MinLevel:    minLevel,
		TotalRows:   len(results),
		Failures:    []schema.CheckFailure{},
		LevelCounts: make(map[schema.Level]int, len(schema.AllLevels)),
	}

	for _, r := range results {
		if !r.OK() {
			check.Failures = append(check.Failures, schema.CheckFailure{
				Row:      r.Row,
				MetricID: r.Request.MetricID,
				Reason:   r.Error,
			})
			continue
		}

		res := r.Result
		check.LevelCounts[res.Level]++
		if !algo.MeetsLevel(res.Level, minLevel) {
			check.Failures = append(check.Failures, schema.CheckFailure{
				Row:       r.Row,
				MetricID:  res.MetricID,
				Formatted: res.Formatted,
				Level:     res.Level,
				Reason:    fmt.Sprintf("%s is below %s", contract.GetPlainLabel(res.Level), contract.GetPlainLabel(minLevel)),
			})
		}
	}

	check.Passed = len(check.Failures) == 0
	return check
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(w io.Writer, result schema.CheckResult, duration time.Duration) {
	printCheckHeader(w, result, duration)

	if result.Passed {
		printCheckSuccess(w, result)
	} else {
		printCheckFailure(w, result)
	}
}

// printCheckHeader prints the common header information for check results.
func printCheckHeader(w io.Writer, result schema.CheckResult, duration time.Duration) {
	_, _ = fmt.Fprintln(w, "Level Check Results:")
	_, _ = fmt.Fprintf(w, "  %-11s %s\n", "Min level:", contract.GetPlainLabel(result.MinLevel))
	_, _ = fmt.Fprintf(w, "  %-11s %d\n\n", "Rows:", result.TotalRows)
	_, _ = fmt.Fprintf(w, "Checked %d rows in %v\n\n", result.TotalRows, duration)
}

// printCheckSuccess prints the success case output.
func printCheckSuccess(w io.Writer, result schema.CheckResult) {
	_, _ = fmt.Fprintf(w, "✅ All rows met the minimum level\n\n")
	printLevelCounts(w, result)
}

// printCheckFailure prints the failure case output.
func printCheckFailure(w io.Writer, result schema.CheckResult) {
	_, _ = fmt.Fprintf(w, "❌ Level check failed: %d of %d rows below %s\n\n",
		len(result.Failures), result.TotalRows, contract.GetPlainLabel(result.MinLevel))

	failures := append([]schema.CheckFailure(nil), result.Failures...)
	shown := algo.RankFailures(failures, maxFailuresShown)
	for _, f := range shown {
		if f.Level == "" {
			_, _ = fmt.Fprintf(w, "  - row %d %s: %s\n", f.Row, f.MetricID, f.Reason)
			continue
		}
		_, _ = fmt.Fprintf(w, "  - row %d %s: %s (%s)\n", f.Row, f.MetricID, f.Formatted, f.Reason)
	}
	if remaining := len(result.Failures) - len(shown); remaining > 0 {
		_, _ = fmt.Fprintf(w, "  ... and %d more\n", remaining)
	}
	_, _ = fmt.Fprintln(w)
	printLevelCounts(w, result)
}

// printLevelCounts prints how many rows landed on each level.
func printLevelCounts(w io.Writer, result schema.CheckResult) {
	_, _ = fmt.Fprintln(w, "Levels observed:")
	for _, level := range schema.AllLevels {
		_, _ = fmt.Fprintf(w, "  %s: %d\n", contract.GetPlainLabel(level), result.LevelCounts[level])
	}
}
