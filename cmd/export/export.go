// Package export handles the export command
package export

import (
	"fjacquet/charge-calc/cmd/common"
	"fjacquet/charge-calc/cmd/root"

	"github.com/spf13/cobra"
)

var (
	format string
	points bool
	merge  bool
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the charge table to CSV, XLSX, JSON or YAML",
	Long: `Parse a cycling file and write its charge summary to the output file.
The format follows the output suffix unless --format is given. With --points the
output is a CSV with one row per measurement point instead.

Example:
  charge-calc export -i run.xlsx -o charges.xlsx
  charge-calc export -i run.edf -o points.csv --points`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: csv, xlsx, json or yaml")
	Cmd.Flags().BoolVar(&points, "points", false, "Write the point level CSV")
	Cmd.Flags().BoolVar(&merge, "merge", false, "Merge cycles that share an identifier")
}

func exportFunc(cmd *cobra.Command, args []string) {
	c := root.MustContainer()
	log := c.GetLogger()

	req := common.ExportRequest{
		Input:  root.SharedFlags.Input,
		Output: root.SharedFlags.Output,
		Format: format,
		Points: points,
		LoadOptions: common.LoadOptions{
			MergeDuplicateCycles: merge || c.GetConfig().Parser.MergeDuplicateCycles,
		},
	}
	if err := common.ExportFile(c.GetParser(), c.GetExporter(), req, log); err != nil {
		log.Fatalf("Error exporting charges: %v", err)
	}
	log.Info("Export completed successfully!")
}
