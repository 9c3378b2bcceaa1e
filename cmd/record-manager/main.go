package main

import (
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/tupyy/record-manager/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	_ = zap.L().Sync()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
