package main

import (
	"os"

	"github.com/edlume/caselab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
