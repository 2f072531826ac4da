package cmd

import (
	"github.com/huangsam/mktcalc/core"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/spf13/cobra"
)

// describeCmd displays the full definition of one metric.
var describeCmd = &cobra.Command{
	Use:   "describe <metric-id>",
	Short: "Show the fields, formula and classification tiers of a metric",
	Long: `Show everything mktcalc knows about a metric without calculating it:
- Input fields with their labels and example values
- The formula and the display format of the result
- The ordered tiers that turn a result into a level and comment
- The analysis tiers and recommendations, when the metric has them

Examples:
  # Inspect the ROI definition
  mktcalc describe roi

  # Export the CTR tiers as CSV
  mktcalc describe ctr --output csv --output-file ctr-tiers.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDescribe(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot describe metric", err)
		}
	},
}
