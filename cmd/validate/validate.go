// Package validate handles report format validation
package validate

import (
	"github.com/spf13/cobra"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/root"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/b1parser"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate that a file is a BASE 1 report",
	Long:  `Check whether a text file looks like a BASE 1 report before converting it.`,
	Run:   validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Validate command called")

	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("Input file is required (--input)")
	}

	valid, err := b1parser.ValidateFormat(input)
	if err != nil {
		root.Log.Fatalf("Error validating file: %v", err)
	}

	if valid {
		root.Log.Info("The file is a valid BASE 1 report")
	} else {
		root.Log.Info("The file is NOT a valid BASE 1 report")
	}
}
