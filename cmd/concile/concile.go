// Package concile handles cross-file conciliation of linealized reports
package concile

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/root"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/concil"
)

var (
	folder        string
	debtPattern   string
	creditPattern string
	outputDir     string
)

// Cmd represents the concile command
var Cmd = &cobra.Command{
	Use:   "concile",
	Short: "Match debt notes against credit notes across linealized files",
	Long: `Load every debt (M2D-RECU*) and credit (M6D-DEV*) CSV in a folder,
match them globally on card + operation number, and write the matched
report plus a per-file subtotal breakdown.`,
	Run: concileFunc,
}

func concileFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Concile command called")

	opts := concil.Options{
		Folder:        folder,
		DebtPattern:   debtPattern,
		CreditPattern: creditPattern,
	}
	if opts.Folder == "" {
		opts.Folder = root.Cfg.Concil.Folder
	}
	if opts.DebtPattern == "" {
		opts.DebtPattern = root.Cfg.Concil.DebtPattern
	}
	if opts.CreditPattern == "" {
		opts.CreditPattern = root.Cfg.Concil.CreditPattern
	}

	result, err := concil.Run(opts)
	if err != nil {
		root.Log.Fatalf("Error during conciliation: %v", err)
	}

	matchFile := filepath.Join(outputDir, "GLOBAL_CONCILIATION_REPORT.csv")
	breakdownFile := filepath.Join(outputDir, "CONCILIATION_SUBTOTALS_REPORT.csv")
	if err := result.WriteReports(matchFile, breakdownFile); err != nil {
		root.Log.Fatalf("Error writing conciliation reports: %v", err)
	}

	root.Log.Infof("Conciliation completed: %d matched transactions", len(result.Matches))
	root.Log.Infof("Reports saved to %s and %s", matchFile, breakdownFile)
}

func init() {
	Cmd.Flags().StringVarP(&folder, "folder", "f", "", "Folder containing the linealized CSV piles")
	Cmd.Flags().StringVar(&debtPattern, "debt-pattern", "", "Glob pattern for debt note files")
	Cmd.Flags().StringVar(&creditPattern, "credit-pattern", "", "Glob pattern for credit note files")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "u", ".", "Directory for the generated reports")
}
