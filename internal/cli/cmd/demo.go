package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/textfocus/internal/cli/model"
	"github.com/bnema/textfocus/internal/cli/styles"
	"github.com/bnema/textfocus/internal/logging"
)

var errNoTerminal = errors.New("demo needs an interactive terminal")

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Move focus between text fields in a terminal form",
	Long: `Start a terminal form whose fields are registered text inputs.

Focus requests go through the coordinator, which notifies the fields using the
configured host platform. With --platform command the change reaches a field
only after its queued view command is processed by the UI loop.

Keys:
  tab / shift+tab   focus next / previous field
  esc               blur the focused field
  ctrl+n            mount and register a new field
  ctrl+w            unmount the focused field
  ctrl+q            quit

Examples:
  textfocus demo
  textfocus demo --platform command
  textfocus demo --platform none      # track focus without notifying fields`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVarP(&appOpts.Platform, "platform", "p", "", "host platform: direct, command or none (default from config)")
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !styles.IsTerminal(os.Stdout) {
		return errNoTerminal
	}

	log := logging.FromContext(app.Ctx())
	if err := app.WatchConfig(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	m := model.NewFocusFormModel(app.Ctx(), model.FocusFormDeps{
		Focus:     app.Coordinator,
		Fields:    app.Fields,
		Commands:  app.Commands,
		Platform:  app.Platform,
		Theme:     app.Theme,
		Labels:    app.Config.Demo.Fields,
		CharLimit: app.Config.Demo.CharLimit,
	})

	log.Info().Stringer("platform", app.Platform).Int("fields", len(app.Config.Demo.Fields)).Msg("demo started")

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}

	log.Info().Stringer("focused", app.Coordinator.CurrentlyFocused()).Msg("demo finished")
	return nil
}
