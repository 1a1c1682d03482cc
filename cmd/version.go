package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the caselab version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("caselab %s\n", version)
	},
}
