package cmd

import (
	"github.com/huangsam/mktcalc/core"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/spf13/cobra"
)

// listCmd shows the metric catalog.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available marketing metrics",
	Long: `List every metric mktcalc can calculate, in catalog order.

Common metrics cover day-to-day campaign performance (CTR, CPC, ROI, ...).
Advanced metrics cover customer economics (CAC, retention, NPS).

Examples:
  # Show the whole catalog
  mktcalc list

  # Only the advanced metrics, as JSON
  mktcalc list --group advanced --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteList(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list metrics", err)
		}
	},
}
