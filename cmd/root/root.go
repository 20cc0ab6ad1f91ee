// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/b1parser"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/common"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/concil"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/config"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/fileutils"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/watcher"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// commands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "coldview-b1",
		Short: "A CLI tool to linealize BASE 1 mainframe reports into CSV tables.",
		Long: `coldview-b1 converts the fixed-width "BASE 1 PENDIENTES DE CONCILIAR"
report exported from the Coldview mainframe viewer into a structured CSV
table, and provides the surrounding conciliation and file-drop tooling.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to coldview-b1!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			// Fan the configured logger out to every package.
			b1parser.SetLogger(Log)
			concil.SetLogger(Log)
			watcher.SetLogger(Log)
			fileutils.SetLogger(Log)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags are the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// InputDir and OutputDir are used by the batch command
	InputDir  string
	OutputDir string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
