package cmd

import (
	"fmt"

	"github.com/okkostudio/wren2c/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wren2c version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wren2c %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
