package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rulesync/internal/logging"
	"github.com/yaklabco/rulesync/internal/ui/pretty"
	"github.com/yaklabco/rulesync/pkg/config"
	"github.com/yaklabco/rulesync/pkg/fsutil"
	"github.com/yaklabco/rulesync/pkg/ignore"
	"github.com/yaklabco/rulesync/pkg/rule"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	format string
	dir    string
}

// sampleRuleName is the rule created by init.
const sampleRuleName = "overview"

const sampleRule = `---
root: true
targets: ["*"]
description: "Project overview and general development guidelines"
globs: ["**/*"]
---

# Project Overview

## General Guidelines

- Use TypeScript for all new code
- Follow consistent naming conventions
- Write self-documenting code with clear variable and function names
- Prefer composition over inheritance
- Use meaningful comments for complex business logic

## Code Style

- Use 2 spaces for indentation
- Use semicolons
- Use double quotes for strings
- Use trailing commas in multi-line objects and arrays
`

const sampleIgnore = `# Files and directories AI tools should not read.
# One glob pattern per line; lines starting with # are comments.

.env*
*.pem
node_modules/
dist/
`

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize rulesync in a project",
		Long: `Create a rulesync configuration file, a sample rule, and an ignore file.

Existing files are left alone unless --force is given. In an interactive
terminal you are asked before each file is overwritten.

Examples:
  rulesync init                   Create .rulesync.yml, .rulesync/overview.md, .rulesyncignore
  rulesync init --format toml     Create .rulesync.toml instead
  rulesync init --force           Overwrite existing files`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().StringVar(&flags.format, "format", config.FormatYAML, "Config format: yaml or toml")
	cmd.Flags().StringVar(&flags.dir, "dir", ".", "Project directory to initialize")

	return cmd
}

// initFile is one file created by init.
type initFile struct {
	path    string
	content []byte
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configContent, err := config.GenerateTemplate(flags.format)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	configName := ".rulesync.yml"
	if flags.format == config.FormatTOML {
		configName = ".rulesync.toml"
	}

	files := []initFile{
		{path: filepath.Join(flags.dir, configName), content: configContent},
		{
			path:    filepath.Join(flags.dir, config.DefaultRulesDir, sampleRuleName+rule.SourceExtension),
			content: []byte(sampleRule),
		},
		{path: filepath.Join(flags.dir, ignore.DefaultFilename), content: []byte(sampleIgnore)},
	}

	interactive := pretty.IsInteractive(cmd.InOrStdin())
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	created := 0
	for _, file := range files {
		if fsutil.Exists(file.path) && !flags.force {
			overwrite := false
			if interactive {
				overwrite, err = confirmOverwrite(out, reader, file.path)
				if err != nil {
					return err
				}
			}
			if !overwrite {
				logger.Warn("file exists; skipping (use --force to overwrite)", logging.FieldPath, file.path)
				continue
			}
		}

		written, err := fsutil.WriteAtomicIfChanged(ctx, file.path, file.content, fsutil.DefaultFileMode)
		if err != nil {
			return fmt.Errorf("write %s: %w", file.path, err)
		}
		if written {
			created++
			fmt.Fprintf(out, "created %s\n", file.path)
		}
	}

	if created > 0 {
		fmt.Fprintln(out, "run 'rulesync generate' to create Cursor rule files")
	}
	return nil
}

// confirmOverwrite asks the user whether path may be replaced. The default is no.
func confirmOverwrite(out io.Writer, reader *bufio.Reader, path string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s exists. Overwrite? [y/N] ", path); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
