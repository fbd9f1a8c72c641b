package cmd

import (
	"os"

	"github.com/okkostudio/wren2c/internal/generator"
	"github.com/okkostudio/wren2c/internal/ui"
	applog "github.com/okkostudio/wren2c/pkg/log"
	"github.com/spf13/cobra"
)

// checkCmd verifies that a generated include file matches its script.
var checkCmd = &cobra.Command{
	Use:   "check [input [output]]",
	Short: "Verify that the .wren.inc file is up to date",
	Long: `Render the include file in memory and compare it with the one on disk.
Exits with a non-zero status when the file is missing or differs, so it can
guard a build or CI step against forgotten regeneration.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(args); err != nil {
			reportError(err)
			os.Exit(1)
		}
	},
}

func init() {
	addJobFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

// runCheck compares the artifact on disk with a fresh rendering.
func runCheck(args []string) error {
	job, opts, err := loadJob(args)
	if err != nil {
		return err
	}
	defer applog.Close()

	if err := generator.Check(job, opts); err != nil {
		return err
	}

	ui.PrintSuccess("up to date", job.Output)
	return nil
}
