package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/okkostudio/wren2c/internal/config"
	"github.com/okkostudio/wren2c/internal/generator"
	"github.com/okkostudio/wren2c/internal/ui"
	applog "github.com/okkostudio/wren2c/pkg/log"
	"github.com/spf13/cobra"
)

var (
	// moduleName overrides the identifier derived from the input file name.
	moduleName string
	// escapeBackslashes turns on backslash escaping regardless of the configuration.
	escapeBackslashes bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate [input [output]]",
	Short: "Convert a Wren script into a .wren.inc include file",
	Long: `Convert a Wren script into a C/C++ include file.

Without arguments the input and output come from wren2c.yaml, falling back to
game.wren and game.wren.inc. When only the input is given the output is the
input path with ".inc" appended.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(args); err != nil {
			reportError(err)
			os.Exit(1)
		}
	},
}

func init() {
	addJobFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&moduleName, "module", "m", "", "name of the generated constant prefix (default: input file name without extension)")
	cmd.Flags().BoolVar(&escapeBackslashes, "escape-backslashes", false, "escape backslashes in the script text")
}

// runGenerate resolves the job and writes the include file.
//
// Returns:
//   - error: An error if configuration, reading or writing fails.
func runGenerate(args []string) error {
	job, opts, err := loadJob(args)
	if err != nil {
		return err
	}
	defer applog.Close()

	res, err := generator.Generate(job, opts)
	if err != nil {
		return err
	}

	ui.PrintSuccess("generated", fmt.Sprintf("%s (%sModuleSource, %d lines)", job.Output, res.Module, res.Lines))
	return nil
}

// loadJob merges the configuration file with command line arguments and
// flags, validates the result and initializes logging.
func loadJob(args []string) (generator.Job, generator.Options, error) {
	path, required := configPath, true
	if path == "" {
		path, required = config.DefaultPath, false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return generator.Job{}, generator.Options{}, err
	}

	if len(args) > 0 {
		cfg.Input = args[0]
		cfg.Output = ""
		if len(args) > 1 {
			cfg.Output = args[1]
		}
	}
	if moduleName != "" {
		cfg.Module = moduleName
	}
	if escapeBackslashes {
		cfg.EscapeBackslashes = true
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.Path = logFile
	}
	config.ApplyDefaults(cfg)

	if err := config.Validate(cfg); err != nil {
		return generator.Job{}, generator.Options{}, err
	}

	if noColor {
		ui.DisableColor()
	}
	if err := applog.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return generator.Job{}, generator.Options{}, fmt.Errorf("failed to open log file %s: %w", cfg.Logging.Path, err)
	}

	job := generator.Job{
		Input:  cfg.Input,
		Output: cfg.Output,
		Module: cfg.Module,
	}
	opts := generator.Options{
		EscapeBackslashes: cfg.EscapeBackslashes,
	}
	return job, opts, nil
}

// reportError prints err on stderr, naming the failing operation and path
// when it is known.
func reportError(err error) {
	var genErr *generator.Error
	if errors.As(err, &genErr) {
		ui.PrintError(genErr.Op+" failed", genErr.Path+": "+genErr.Err.Error())
		return
	}
	ui.PrintError("error", err.Error())
}
