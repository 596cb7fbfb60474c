// Package calc prints the charge table of a cycling file
package calc

import (
	"fjacquet/charge-calc/cmd/common"
	"fjacquet/charge-calc/cmd/root"
	"fjacquet/charge-calc/internal/logging"

	"github.com/spf13/cobra"
)

var (
	withEnergy bool
	merge      bool
)

// Cmd represents the calc command
var Cmd = &cobra.Command{
	Use:   "calc",
	Short: "Print the charge of every step and cycle",
	Long: `Parse a cycling file and print one row per cycle, one row per step with its
charge and a Total row per cycle, separated by tabs.

Example:
  charge-calc calc -i 222-23-40.edf --energy`,
	Run: calcFunc,
}

func init() {
	Cmd.Flags().BoolVar(&withEnergy, "energy", false, "Add a column with step and cycle energy")
	Cmd.Flags().BoolVar(&merge, "merge", false, "Merge cycles that share an identifier")
}

func calcFunc(cmd *cobra.Command, args []string) {
	c := root.MustContainer()
	cfg := c.GetConfig()
	log := c.GetLogger()

	opts := common.LoadOptions{MergeDuplicateCycles: merge || cfg.Parser.MergeDuplicateCycles}
	_, summary, err := common.LoadSummary(c.GetParser(), root.SharedFlags.Input, opts, log)
	if err != nil {
		log.Fatalf("Error calculating charges: %v", err)
	}

	if err := common.WriteTable(cmd.OutOrStdout(), summary, cfg.Output.Precision, withEnergy); err != nil {
		log.Fatalf("Error printing table: %v", err)
	}
	log.Debug("Charge table printed", logging.F(logging.FieldCycles, len(summary.Cycles)))
}
