package cmd

import (
	"github.com/huangsam/mktcalc/core"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/spf13/cobra"
)

// evaluateCmd calculates a single metric.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <metric-id>",
	Short: "Calculate a metric and interpret the result",
	Long: `Calculate one metric from the supplied values and print the formatted
result, its level and a short comment. Missing values are not an error:
they propagate as NaN, and a zero divisor yields Infinity.

Examples:
  # Click-through rate
  mktcalc evaluate ctr --values clicks=20,impressions=1000

  # Return on investment with the full analysis
  mktcalc evaluate roi --values revenue=15000,cost=5000 --detail`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEvaluate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot evaluate metric", err)
		}
	},
}
