package main

import (
	"os"

	"github.com/Summpot/test-cdylib/src/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
