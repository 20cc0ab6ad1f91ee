// Package batch handles batch conversion of report files
package batch

import (
	"github.com/spf13/cobra"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/root"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/b1parser"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert multiple BASE 1 reports to CSV",
	Long:  `Convert every .txt report in a directory to a CSV file of the same base name.`,
	Run:   batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch convert command called")
	root.Log.Infof("Input directory: %s", root.InputDir)
	root.Log.Infof("Output directory: %s", root.OutputDir)

	count, err := b1parser.BatchConvert(root.InputDir, root.OutputDir)
	if err != nil {
		root.Log.Fatalf("Error during batch conversion: %v", err)
	}
	root.Log.Infof("Batch conversion completed successfully! Converted %d files.", count)
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "d", "", "Input directory containing report files (required)")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "u", "", "Output directory for CSV files (required)")
	if err := Cmd.MarkFlagRequired("input-dir"); err != nil {
		panic(err)
	}
	if err := Cmd.MarkFlagRequired("output-dir"); err != nil {
		panic(err)
	}
}
