package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/textfocus/internal/cli/styles"
	"github.com/bnema/textfocus/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long: `Show where the configuration lives, the effective values, and the JSON schema
editors can use to validate config.toml.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, environment overrides
(TEXTFOCUS_HOST_PLATFORM, TEXTFOCUS_LOG_LEVEL, ...) and normalisation.
Output is colorized when writing to a terminal.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := app.ConfigFile()
	if err != nil {
		return fmt.Errorf("resolve config file: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	return styles.WriteSource(cmd.OutOrStdout(), string(data), "toml")
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	return styles.WriteSource(cmd.OutOrStdout(), string(data)+"\n", "json")
}
