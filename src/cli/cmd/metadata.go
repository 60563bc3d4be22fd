package cmd

import (
	"context"
	"fmt"

	"github.com/Summpot/test-cdylib/src/cargo"
	"github.com/spf13/cobra"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata [dir]",
	Short: "Print the workspace target directory and root",
	RunE:  runMetadata,
}

func init() {
	rootCmd.AddCommand(metadataCmd)
}

func runMetadata(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	c := cargo.New(verbose)
	md, err := c.Metadata(context.Background(), dir)
	if err != nil {
		return err
	}

	fmt.Printf("%-18s%s\n", "target_directory", md.TargetDirectory)
	fmt.Printf("%-18s%s\n", "workspace_root", md.WorkspaceRoot)
	return nil
}
