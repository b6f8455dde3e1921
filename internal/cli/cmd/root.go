// Package cmd provides Cobra CLI commands for textfocus.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/textfocus/internal/cli"
	"github.com/bnema/textfocus/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "textfocus",
		Short: "Track and move keyboard focus between text inputs",
		Long: `textfocus keeps a single record of which text input holds keyboard focus
and tells the host views about every change.

Hosts are reached in one of two ways, chosen once from configuration:
  direct    focus and blur calls on the view itself
  command   symbolic focusTextInput / blurTextInput commands addressed to the view
Any other platform only tracks focus.

Use 'textfocus demo' to drive the coordinator from a terminal form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			for _, notice := range app.Notices {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", notice)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&appOpts.LogToStderr, "log-stderr", false, "write logs to stderr instead of the log file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
