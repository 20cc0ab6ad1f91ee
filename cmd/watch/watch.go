// Package watch handles the report drop-directory check
package watch

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/root"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/b1parser"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/watcher"
)

var (
	watchDir    string
	targetFile  string
	destination string
	follow      bool
	convert     bool
)

// Cmd represents the watch command
var Cmd = &cobra.Command{
	Use:   "watch",
	Short: "Check the drop directory for a new report file",
	Long: `Check whether the daily report has been dropped in the watch directory
and move it to the processed directory. Intended to be run from cron; a
missing file exits normally. With --follow the command waits for the file
to appear, and with --convert the moved report is linealized immediately.`,
	Run: watchFunc,
}

func watchFunc(cmd *cobra.Command, args []string) {
	opts := watcher.Options{
		WatchDir:    watchDir,
		TargetFile:  targetFile,
		Destination: destination,
		Timeout:     time.Duration(root.Cfg.Watch.TimeoutSecs) * time.Second,
	}
	if opts.WatchDir == "" {
		opts.WatchDir = root.Cfg.Watch.Directory
	}
	if opts.TargetFile == "" {
		opts.TargetFile = root.Cfg.Watch.TargetFile
	}
	if opts.Destination == "" {
		opts.Destination = root.Cfg.Watch.Destination
	}
	if opts.WatchDir == "" || opts.Destination == "" {
		root.Log.Fatal("Watch directory and destination are required (flags or config)")
	}

	checker := watcher.New(opts)

	var (
		outcome watcher.Outcome
		moved   string
		err     error
	)
	if follow {
		outcome, moved, err = checker.Follow()
	} else {
		outcome, moved, err = checker.RunOnce()
	}
	if err != nil {
		root.Log.Fatalf("Error checking for report file: %v", err)
	}
	if outcome != watcher.FileMoved {
		return
	}

	if convert {
		output := b1parser.OutputFileName(time.Now(), root.Cfg.Output.Directory)
		if err := b1parser.ConvertToCSV(moved, output); err != nil {
			root.Log.Fatalf("Error converting moved report: %v", err)
		}
		root.Log.WithField("file", output).Info("Moved report linealized")
	}
}

func init() {
	Cmd.Flags().StringVarP(&watchDir, "dir", "d", "", "Directory to check for the report file")
	Cmd.Flags().StringVarP(&targetFile, "target", "t", "", "Report file name to look for")
	Cmd.Flags().StringVar(&destination, "dest", "", "Directory where found reports are archived")
	Cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Wait for the file to appear instead of exiting")
	Cmd.Flags().BoolVarP(&convert, "convert", "c", false, "Linealize the report after moving it")
}
