package cursor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/yaklabco/rulesync/pkg/config"
	"github.com/yaklabco/rulesync/pkg/ignore"
	"github.com/yaklabco/rulesync/pkg/output"
	"github.com/yaklabco/rulesync/pkg/rule"
)

// File naming used by Cursor.
const (
	RuleExtension  = ".mdc"
	IgnoreFilename = ".cursorignore"
)

// Generate renders one record per rule, in order, followed by a .cursorignore
// record when the loader returns any patterns. baseDir may be empty.
//
// The loader is the only call that can fail; on error no records are returned.
func Generate(
	ctx context.Context,
	rules []rule.Rule,
	cfg *config.Config,
	loader ignore.Loader,
	baseDir string,
) ([]output.Record, error) {
	outputDir := config.DefaultCursorDir
	if cfg != nil && cfg.OutputPaths.Cursor != "" {
		outputDir = cfg.OutputPaths.Cursor
	}

	records := lo.Map(rules, func(r rule.Rule, _ int) output.Record {
		return output.Record{
			Tool:     output.ToolCursor,
			Filepath: RulePath(baseDir, outputDir, r.Filename),
			Content:  Render(r, r.Category()),
		}
	})

	if loader == nil {
		return records, nil
	}

	patterns, err := loader.Load(ctx, baseDir)
	if err != nil {
		return nil, fmt.Errorf("generate cursor ignore file: %w", err)
	}
	if patterns.Empty() {
		return records, nil
	}

	return append(records, output.Record{
		Tool:     output.ToolCursor,
		Filepath: IgnorePath(baseDir),
		Content:  ignore.GenerateFile(patterns.Patterns, output.ToolCursor),
	}), nil
}

// RulePath is the destination of the .mdc file for a rule named filename.
func RulePath(baseDir, outputDir, filename string) string {
	return filepath.Join(baseDir, outputDir, filename+RuleExtension)
}

// IgnorePath is the destination of .cursorignore for baseDir.
func IgnorePath(baseDir string) string {
	return filepath.Join(baseDir, IgnoreFilename)
}
