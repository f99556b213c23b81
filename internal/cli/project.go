package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/yaklabco/rulesync/internal/configloader"
	"github.com/yaklabco/rulesync/internal/logging"
	"github.com/yaklabco/rulesync/pkg/config"
	"github.com/yaklabco/rulesync/pkg/cursor"
	"github.com/yaklabco/rulesync/pkg/fsutil"
	"github.com/yaklabco/rulesync/pkg/ignore"
	"github.com/yaklabco/rulesync/pkg/output"
	"github.com/yaklabco/rulesync/pkg/rule"
)

// project is a resolved configuration plus the directory its paths are relative to.
type project struct {
	cfg  *config.Config
	load *configloader.LoadResult
}

// loadProject resolves configuration for cmd, with cliCfg taking precedence.
func loadProject(cmd *cobra.Command, cliCfg *config.Config) (*project, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	cliCfg, err = anchorFlagPaths(cliCfg)
	if err != nil {
		return nil, err
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, result.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldRulesDir, result.Config.RulesDir,
		logging.FieldBaseDir, result.Config.BaseDirs,
		logging.FieldOutputDir, result.Config.OutputPaths.Cursor,
		logging.FieldTargets, result.Config.Targets,
		logging.FieldDryRun, result.Config.DryRun,
	)

	return &project{cfg: result.Config, load: result}, nil
}

// anchorFlagPaths makes relative --base-dir values absolute against the working
// directory. Config file values stay relative to the config's directory.
func anchorFlagPaths(cliCfg *config.Config) (*config.Config, error) {
	if cliCfg == nil || len(cliCfg.BaseDirs) == 0 {
		return cliCfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	anchored := cliCfg.Clone()
	anchored.BaseDirs = lo.Map(cliCfg.BaseDirs, func(dir string, _ int) string {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(wd, dir)
	})
	return anchored, nil
}

// commandContext returns the command context, falling back to Background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (p *project) root() string {
	return p.load.Root
}

func (p *project) rulesDir() string {
	return p.load.Resolve(p.cfg.RulesDir)
}

func (p *project) baseDirs() []string {
	return lo.Uniq(lo.Map(p.cfg.BaseDirs, func(dir string, _ int) string {
		return p.load.Resolve(dir)
	}))
}

// rel shortens path for display relative to the project root.
func (p *project) rel(path string) string {
	if rel, err := filepath.Rel(p.root(), path); err == nil {
		return rel
	}
	return path
}

// wants reports whether tool is selected by the configured targets.
func (p *project) wants(tool output.Tool) bool {
	return slices.Contains(p.cfg.Targets, rule.TargetAll) || slices.Contains(p.cfg.Targets, string(tool))
}

// ignoreLoader reads the ignore declaration from the project root for every base directory.
// It returns nil when ignore generation is disabled.
func (p *project) ignoreLoader() ignore.Loader {
	if p.cfg.NoIgnore {
		return nil
	}
	fileLoader := ignore.FileLoader{Filename: p.cfg.IgnoreFile}
	return ignore.LoaderFunc(func(ctx context.Context, _ string) (ignore.Patterns, error) {
		return fileLoader.Load(ctx, p.root())
	})
}

// loadRules reads every rule source from the rules directory.
func (p *project) loadRules(ctx context.Context) ([]rule.Rule, error) {
	dir := p.rulesDir()
	rules, err := rule.LoadDir(ctx, dir)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotFound) {
			return nil, fmt.Errorf("rules directory %s not found (run 'rulesync init'): %w", p.rel(dir), err)
		}
		return nil, err
	}

	logging.FromContext(ctx).Debug("loaded rules",
		logging.FieldRulesDir, dir,
		logging.FieldRules, len(rules),
	)
	return rules, nil
}

// records assembles the output for every selected tool and base directory.
func (p *project) records(ctx context.Context, rules []rule.Rule) ([]output.Record, error) {
	ctx = logging.WithFields(ctx, logging.FieldTool, output.ToolCursor)
	logger := logging.FromContext(ctx)

	var records []output.Record
	if !p.wants(output.ToolCursor) {
		logger.Debug("skipping tool")
		return records, nil
	}

	selected := lo.Filter(rules, func(r rule.Rule, _ int) bool {
		return r.AppliesTo(string(output.ToolCursor))
	})

	for _, baseDir := range p.baseDirs() {
		generated, err := cursor.Generate(ctx, selected, p.cfg, p.ignoreLoader(), baseDir)
		if err != nil {
			return nil, err
		}
		logger.Debug("generated records",
			logging.FieldBaseDir, baseDir,
			logging.FieldRecords, len(generated),
		)
		records = append(records, generated...)
	}

	return records, nil
}
