package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath is the configuration file given with --config.
	configPath string
	// logLevel and logFile override the logging section of the configuration.
	logLevel string
	logFile  string
	// noColor disables ANSI colors in terminal output.
	noColor bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wren2c",
	Short: "Embed Wren scripts in C/C++ as string literals",
	Long: `wren2c converts a Wren script into a .wren.inc include file holding the
script text as a static const char* constant, so the host application can
load the module without file I/O at runtime.`,
}

// Execute runs the CLI and exits with status 1 on usage errors. Subcommands
// report their own failures and exit before returning here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default wren2c.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
