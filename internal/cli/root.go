// Package cli provides the Cobra command structure for rulesync.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/yaklabco/rulesync/internal/configloader"
	"github.com/yaklabco/rulesync/internal/logging"
	"github.com/yaklabco/rulesync/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root rulesync command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "rulesync",
		Short: "Generate AI coding assistant rule files from one source",
		Long:  rootLongDescription + environmentHelp(),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(commandContext(cmd), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// newStyles builds output styles from the --color flag and the command's writer.
func newStyles(cmd *cobra.Command) *pretty.Styles {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))
}

const rootLongDescription = `rulesync turns a directory of Markdown rule sources into the rule files
AI coding tools read.

Each rule is a Markdown file with optional YAML frontmatter (description,
globs, cursorRuleType, targets). rulesync classifies every rule as always,
manual, specificFiles, or intelligently and writes Cursor .mdc files, plus
a .cursorignore built from .rulesyncignore.`

// environmentHelp renders the RULESYNC_* overrides as a help section.
func environmentHelp() string {
	vars := configloader.ListEnvVars()
	width := lo.Max(lo.Map(vars, func(v configloader.EnvVar, _ int) int { return len(v.Name) }))

	var builder strings.Builder
	builder.WriteString("\n\nEnvironment:")
	for _, v := range vars {
		fmt.Fprintf(&builder, "\n  %-*s  %s", width, v.Name, v.Description)
	}
	return builder.String()
}
