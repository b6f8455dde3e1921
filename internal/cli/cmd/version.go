package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/textfocus/internal/cli/styles"
	"github.com/bnema/textfocus/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		renderVersion(cmd.OutOrStdout(), styles.NewTheme(), buildInfo)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func renderVersion(w io.Writer, theme *styles.Theme, info build.Info) {
	row := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", theme.Label.Render(label), value)
	}

	fmt.Fprintln(w, theme.Title.Render("textfocus")+" "+theme.Badge.Render(info.Version))
	row("commit", info.Commit)
	row("built", info.BuildDate)
	row("go", info.GoVersion)
	row("repo", theme.Subtle.Render(build.RepoURL()))
}
