package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/checkenv/internal/app"
	"github.com/firefly-engineering/checkenv/internal/config"
	"github.com/firefly-engineering/checkenv/internal/errors"
	"github.com/firefly-engineering/checkenv/internal/logging"
	"github.com/firefly-engineering/checkenv/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "checkenv",
	Short: "Print Java runtime, OS and user properties",
	Long: `checkenv prints the properties of the host Java runtime, operating
system and user session, one "<Label>: <value>" line each:

  Java Version, Java Vendor, Java Home, Java Class Version, Java Class Path,
  OS Name, OS Version, User Name, User Home, User Dir

Arguments are ignored. Values that cannot be determined are printed empty.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := app.Current().Config
		logging.Setup(cfg.Debug, cfg.LogFormat == config.LogFormatJSON, cmd.ErrOrStderr())
	},
	RunE: runReport,
}

// ignoredArgs holds the command line of the current run. Cobra never sees
// it: its hidden __complete command is resolved from the arguments even
// with completion disabled.
var ignoredArgs []string

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	ignoredArgs = args
	defer func() { ignoredArgs = nil }()

	rootCmd.SetArgs([]string{})
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runReport(cmd *cobra.Command, _ []string) error {
	if len(ignoredArgs) > 0 {
		logging.Debug("ignoring arguments", "args", ignoredArgs)
	}

	props, err := app.Current().Snapshot(cmd.Context())
	if err != nil {
		return err
	}

	if err := report.New(props).Write(cmd.OutOrStdout()); err != nil {
		return errors.OutputFailed(err)
	}
	return nil
}
