package main

import (
	"os"

	"github.com/Conversia-AI/craftable-convx/errx/errxcobra"
	"github.com/Conversia-AI/craftable-convx/internal/cli"
)

func main() {
	command := cli.NewConvxCommand()
	errxcobra.WithCLI(command, errxcobra.DefaultCLIOptions())
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
