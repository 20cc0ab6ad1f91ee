// Package inspect handles report diagnostics
package inspect

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/root"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/b1parser"
)

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Scan a BASE 1 report and print statistics",
	Long: `Scan a report without writing output and report what the scanner saw:
line counts, banner regions, cardholder headers, data pairs, and how many
candidate records the RS gate dropped.`,
	Run: inspectFunc,
}

func inspectFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("Input file is required (--input)")
	}

	stats, err := b1parser.InspectFile(input)
	if err != nil {
		root.Log.Fatalf("Error inspecting report: %v", err)
	}

	root.Log.WithFields(logrus.Fields{
		"total_lines":    stats.TotalLines,
		"skipped_lines":  stats.SkippedLines,
		"blank_lines":    stats.BlankLines,
		"banner_regions": stats.BannerRegions,
		"headers":        stats.Headers,
		"data_lines":     stats.DataLines,
		"records":        stats.Records,
		"dropped_rs":     stats.DroppedRS,
		"orphan_lines":   stats.OrphanLines,
	}).Info("Report scan statistics")
}
