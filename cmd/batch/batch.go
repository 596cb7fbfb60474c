// Package batch handles batch processing of files
package batch

import (
	"fjacquet/charge-calc/cmd/common"
	"fjacquet/charge-calc/cmd/root"
	"fjacquet/charge-calc/internal/logging"

	"github.com/spf13/cobra"
)

var (
	format string
	merge  bool
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process files from a directory",
	Long: `Batch process files from an input directory and output them to another directory.

Every .xlsx and .edf file of the input directory is parsed and its charge summary
written to the output directory under the same base name. A file that fails is
logged and the batch continues.

Example:
  charge-calc batch -i runs/ -o results/ --format xlsx`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Export format (defaults to output.format)")
	Cmd.Flags().BoolVar(&merge, "merge", false, "Merge cycles that share an identifier")

	// Override the usage text for the input/output flags in batch context
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`)
}

func batchFunc(cmd *cobra.Command, args []string) {
	c := root.MustContainer()
	cfg := c.GetConfig()
	log := c.GetLogger()

	f := format
	if f == "" {
		f = cfg.Output.Format
	}

	log.Info("Batch command called",
		logging.F(logging.FieldInputFile, root.SharedFlags.Input),
		logging.F(logging.FieldOutputFile, root.SharedFlags.Output),
		logging.F(logging.FieldFormat, f))

	opts := common.LoadOptions{MergeDuplicateCycles: merge || cfg.Parser.MergeDuplicateCycles}
	result, err := common.ProcessDirectory(c.GetParser(), c.GetExporter(),
		root.SharedFlags.Input, root.SharedFlags.Output, f, opts, log)
	if err != nil {
		log.Fatalf("Error during batch processing: %v", err)
	}

	log.Info("Batch processing completed",
		logging.F(logging.FieldCount, result.Processed),
		logging.F(logging.FieldSkipped, result.Failed))
}
