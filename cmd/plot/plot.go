// Package plot renders cycle charts
package plot

import (
	"path/filepath"

	"fjacquet/charge-calc/cmd/common"
	"fjacquet/charge-calc/cmd/root"
	"fjacquet/charge-calc/internal/chart"
	"fjacquet/charge-calc/internal/fileutils"
	"fjacquet/charge-calc/internal/logging"

	"github.com/spf13/cobra"
)

var (
	quantity  string
	maxPoints int
	merge     bool
)

// Cmd represents the plot command
var Cmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot voltage, current or charge against time",
	Long: `Render one line per cycle of the chosen quantity against a continuous time
axis. Steps are laid end to end and long series are downsampled. The image
format follows the output suffix (png, svg, pdf).

Example:
  charge-calc plot -i run.edf -o voltage.png --quantity voltage`,
	Run: plotFunc,
}

func init() {
	Cmd.Flags().StringVarP(&quantity, "quantity", "q", string(chart.Voltage), "Quantity to plot: voltage, current or charge")
	Cmd.Flags().IntVar(&maxPoints, "max-points", 0, "Maximum points per cycle (defaults to chart.max_points)")
	Cmd.Flags().BoolVar(&merge, "merge", false, "Merge cycles that share an identifier")
}

func plotFunc(cmd *cobra.Command, args []string) {
	c := root.MustContainer()
	cfg := c.GetConfig()
	log := c.GetLogger()

	q, err := chart.ParseQuantity(quantity)
	if err != nil {
		log.Fatalf("Invalid quantity: %v", err)
	}
	output := root.SharedFlags.Output
	if output == "" {
		log.Fatalf("Output file must be specified")
	}

	limit := maxPoints
	if limit <= 0 {
		limit = cfg.Chart.MaxPoints
	}

	opts := common.LoadOptions{MergeDuplicateCycles: merge || cfg.Parser.MergeDuplicateCycles}
	doc, _, err := common.LoadSummary(c.GetParser(), root.SharedFlags.Input, opts, log)
	if err != nil {
		log.Fatalf("Error reading cycles: %v", err)
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(output)); err != nil {
		log.Fatalf("Error preparing output: %v", err)
	}

	series := chart.BuildAllSeries(doc, limit)
	title := filepath.Base(root.SharedFlags.Input)
	if err := chart.SaveChart(output, series, q, title, cfg.Chart.WidthInches, cfg.Chart.HeightInches); err != nil {
		log.Fatalf("Error rendering chart: %v", err)
	}

	log.Info("Chart written",
		logging.F(logging.FieldOutputFile, output),
		logging.F(logging.FieldCycles, len(series)))
}
