package cmd

import (
	"github.com/huangsam/mktcalc/core"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when any metric in a batch falls below a minimum level",
	Long: `Evaluate a batch input file and enforce a minimum performance level.

Designed for scheduled reports and pipelines - exits with a non-zero code when any
row is below --min-level or cannot be evaluated.

Levels rank excellent > good > fair > poor. Default minimum: fair

Examples:
  # Gate weekly campaign numbers
  mktcalc check --input weekly.csv

  # Demand at least good results
  mktcalc check --input weekly.json --min-level good`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Level check failed", err)
		}
	},
}
