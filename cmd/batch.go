package cmd

import (
	"github.com/huangsam/mktcalc/core"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/spf13/cobra"
)

// batchCmd evaluates every row of an input file.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate many metrics from a CSV, JSON or YAML file",
	Long: `Evaluate every row of an input file concurrently and print the results in input order.

Input formats:
- CSV with a 'metric' column and one column per field id (empty cells are skipped)
- JSON array of {"metric": "ctr", "values": {"clicks": 20, "impressions": 1000}}
- YAML list of the same shape

Rows naming an unknown metric are reported individually; the rest still run.

Examples:
  # Evaluate a campaign export
  mktcalc batch --input campaigns.csv

  # Archive the results as Parquet
  mktcalc batch --input campaigns.yaml --output parquet --output-file results.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBatch(rootCtx, cfg); err != nil {
			contract.LogFatal("Batch evaluation failed", err)
		}
	},
}
