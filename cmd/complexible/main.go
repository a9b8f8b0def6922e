package main

import (
	"os"

	"github.com/kevmasajedi/complexible/cmd/complexible/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
