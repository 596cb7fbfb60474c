// Package detect reports how a file would be parsed
package detect

import (
	"fmt"
	"io"

	"fjacquet/charge-calc/cmd/root"
	"fjacquet/charge-calc/internal/fileutils"
	"fjacquet/charge-calc/internal/parser"

	"github.com/spf13/cobra"
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Report the encoding chosen from the file suffix and from its content",
	Long: `Report which record encoding a file maps to by its suffix and which one its
content looks like. Useful when a file carries an unexpected extension.

Example:
  charge-calc detect -i export.dat`,
	Run: detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) {
	log := root.MustContainer().GetLogger()

	input := root.SharedFlags.Input
	if input == "" {
		log.Fatalf("Input file must be specified")
	}

	data, err := fileutils.ReadFile(input)
	if err != nil {
		log.Fatalf("Error reading %s: %v", input, err)
	}

	if err := Report(cmd.OutOrStdout(), input, data); err != nil {
		log.Fatalf("Error writing report: %v", err)
	}
}

// Report writes the suffix and content decisions for the file at path.
func Report(w io.Writer, path string, data []byte) error {
	bySuffix := "unsupported"
	if enc, err := parser.EncodingForPath(path); err == nil {
		bySuffix = enc.String()
	}

	byContent := "unrecognized"
	enc, reason, err := parser.DetectEncoding(data)
	if err == nil {
		byContent = enc.String()
	}

	_, werr := fmt.Fprintf(w, "file:\t%s\nsuffix:\t%s\ncontent:\t%s (%s)\n", path, bySuffix, byContent, reason)
	return werr
}
