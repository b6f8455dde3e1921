package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/textfocus/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate documentation (man pages or markdown) from CLI command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files (for websites/wikis)

Man pages go to $XDG_DATA_HOME/man/man1 unless --output is given.

Examples:
  textfocus gen-docs                        # Install man pages
  textfocus gen-docs --format markdown      # Markdown into ./docs
  textfocus gen-docs --output ./man         # Man pages into ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir, err := docsOutputDir(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rootCmd.DisableAutoGenTag = true

	var ext string
	switch genDocsFormat {
	case "man":
		ext = ".1"
		err = doc.GenManTree(rootCmd, manHeader(time.Now()), outputDir)
	case "markdown":
		ext = ".md"
		err = doc.GenMarkdownTree(rootCmd, outputDir)
	}
	if err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s docs to %s\n", genDocsFormat, outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil // listing is informational
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}

func docsOutputDir(format, override string) (string, error) {
	switch format {
	case "man":
		if override != "" {
			return override, nil
		}
		manDir, err := config.GetManDir()
		if err != nil {
			return "", fmt.Errorf("resolve man directory: %w", err)
		}
		return manDir, nil
	case "markdown":
		if override != "" {
			return override, nil
		}
		return "./docs", nil
	default:
		return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
}

func manHeader(date time.Time) *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "TEXTFOCUS",
		Section: "1",
		Source:  "textfocus " + buildInfo.Version,
		Manual:  "textfocus Manual",
		Date:    &date,
	}
}
