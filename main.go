// Package main provides the entry point for the coldview-b1 CLI application.
package main

import (
	"os"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/batch"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/concile"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/inspect"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/linealize"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/root"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/validate"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/cmd/watch"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(linealize.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(inspect.Cmd)
	root.Cmd.AddCommand(concile.Cmd)
	root.Cmd.AddCommand(watch.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Error(err)
		os.Exit(1)
	}
}
