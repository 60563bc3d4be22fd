package cmd

import (
	"context"
	"fmt"

	"github.com/Summpot/test-cdylib/src/cargo"
	"github.com/Summpot/test-cdylib/src/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())

		tc, err := cargo.Probe(context.Background())
		if err != nil {
			fmt.Printf("cargo: not available (%v)\n", err)
			return
		}
		fmt.Printf("%s (offline: %v)\n", tc.Raw, tc.Offline)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
