// Package linealize handles the report-to-CSV conversion command
package linealize

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/common"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/root"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/b1parser"
)

// Cmd represents the linealize command
var Cmd = &cobra.Command{
	Use:   "linealize",
	Short: "Convert a BASE 1 report to CSV",
	Long: `Convert a fixed-width BASE 1 report file to a 29-column CSV table.
When --output is omitted the conventional name dated with the last
business day is used.`,
	Run: linealizeFunc,
}

func linealizeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Linealize command called")

	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("Input file is required (--input)")
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = b1parser.OutputFileName(time.Now(), root.Cfg.Output.Directory)
		root.Log.WithField("file", output).Info("Using conventional output file name")
	}

	common.ProcessFile(b1parser.NewAdapter(), input, output, root.SharedFlags.Validate, root.Log)
}
