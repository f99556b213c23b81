package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rulesync/internal/logging"
	"github.com/yaklabco/rulesync/internal/ui/pretty"
	"github.com/yaklabco/rulesync/pkg/config"
	"github.com/yaklabco/rulesync/pkg/output"
	"github.com/yaklabco/rulesync/pkg/rule"
	"github.com/yaklabco/rulesync/pkg/watch"
)

func newGenerateCommand() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Cursor rule files from rule sources",
		Long:  generateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &cfg)
		},
	}

	cmd.Flags().StringSliceVar(&cfg.BaseDirs, "base-dir", nil, "base directories to generate into (repeatable)")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "report what would be written without writing")
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "exit non-zero if generated files are out of date")
	cmd.Flags().BoolVar(&cfg.Diff, "diff", false, "print a unified diff of pending changes")
	cmd.Flags().BoolVar(&cfg.Watch, "watch", false, "regenerate when rule sources change")
	cmd.Flags().BoolVar(&cfg.NoIgnore, "no-ignore", false, "do not generate .cursorignore")
	cmd.Flags().BoolVar(&cfg.Backup, "backup", false, "back up files before overwriting them")

	return cmd
}

const generateLongDescription = `Generate Cursor .mdc rule files from the Markdown rule sources.

Every rule is classified as always, manual, specificFiles, or intelligently
from its frontmatter and written to <base-dir>/.cursor/rules/<name>.mdc.
When the ignore file (.rulesyncignore) has patterns, a .cursorignore is
written to each base directory as well.

Examples:
  rulesync generate                      # Generate into the current project
  rulesync generate --base-dir . --base-dir packages/web
  rulesync generate --dry-run            # Show what would change
  rulesync generate --check              # Fail in CI when outputs are stale
  rulesync generate --diff --dry-run     # Review pending changes
  rulesync generate --watch              # Regenerate on every edit`

// generator runs one generation pass for a resolved project.
type generator struct {
	project *project
	styles  *pretty.Styles
	out     io.Writer
}

func runGenerate(cmd *cobra.Command, cliCfg *config.Config) error {
	ctx := commandContext(cmd)

	proj, err := loadProject(cmd, cliCfg)
	if err != nil {
		return err
	}

	gen := &generator{
		project: proj,
		styles:  newStyles(cmd),
		out:     cmd.OutOrStdout(),
	}

	if err := gen.run(ctx); err != nil {
		return err
	}

	if !proj.cfg.Watch {
		return nil
	}

	// Watch sessions run for a long time; timestamp their entries.
	watchLogger := logging.NewWithWriter(cmd.ErrOrStderr(),
		logging.FromContext(ctx).GetLevel().String(),
		logging.WithPrefix("watch"), logging.WithTimestamp())
	return gen.watch(logging.WithLogger(ctx, watchLogger))
}

// run loads rules, assembles records, and writes, checks, or diffs them.
func (g *generator) run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	cfg := g.project.cfg

	rules, err := g.project.loadRules(ctx)
	if err != nil {
		return err
	}
	for _, r := range rules {
		logger.Debug("classified rule",
			logging.FieldRule, r.Filename,
			logging.FieldCategory, r.Category(),
			logging.FieldGlobs, []string(r.Frontmatter.Globs),
		)
	}

	records, err := g.project.records(ctx, rules)
	if err != nil {
		return err
	}

	if cfg.Diff {
		diff, err := output.Diff(ctx, records)
		if err != nil {
			return err
		}
		fmt.Fprint(g.out, g.styles.FormatDiff(diff))
	}

	writer := output.NewWriter(output.WriteOptions{
		DryRun: cfg.DryRun || cfg.Check,
		Backup: cfg.Backup,
	})
	result, err := writer.Write(ctx, records)
	if err != nil {
		return err
	}
	for i := range result.Files {
		result.Files[i].Path = g.project.rel(result.Files[i].Path)
	}

	if cfg.Check {
		fmt.Fprint(g.out, g.styles.FormatCheckSummary(result))
		if len(result.Stale()) > 0 {
			return ErrOutOfDate
		}
		return nil
	}

	for _, file := range result.Files {
		logger.Debug("processed file",
			logging.FieldPath, file.Path,
			logging.FieldStatus, file.Status,
		)
		if file.BackedUp {
			logger.Info("backed up modified file", logging.FieldPath, file.Path)
		}
	}

	if cfg.DryRun {
		fmt.Fprint(g.out, g.styles.FormatFileResults(result))
	}
	fmt.Fprint(g.out, g.styles.FormatWriteSummary(result, cfg.DryRun))

	logger.Debug("generation complete",
		logging.FieldCreated, result.Count(output.StatusCreated),
		logging.FieldUpdated, result.Count(output.StatusUpdated),
		logging.FieldUnchanged, result.Count(output.StatusUnchanged),
		logging.FieldSize, result.HumanBytes(),
	)
	return nil
}

// watch regenerates on every settled change to the rule sources or ignore file
// until ctx is cancelled.
func (g *generator) watch(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	cfg := g.project.cfg

	targets := []watch.Target{
		{Dir: g.project.rulesDir(), Extensions: []string{rule.SourceExtension}},
	}
	if !cfg.NoIgnore {
		targets = append(targets, watch.Target{Dir: g.project.root(), Files: []string{cfg.IgnoreFile}})
	}

	watcher, err := watch.New(targets)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	logger.Info("watching for changes", logging.FieldRulesDir, g.project.rel(g.project.rulesDir()))

	return watcher.Run(ctx, func(ctx context.Context, changed []string) error {
		logger.Info("change detected", logging.FieldChanged, len(changed))
		// A broken rule should not end the session; report it and keep watching.
		if err := g.run(ctx); err != nil {
			if IsReported(err) {
				return nil
			}
			logger.Error("regeneration failed", logging.FieldError, err)
		}
		return nil
	})
}
