// Package ignore loads the tool-agnostic ignore patterns and renders them
// into per-tool ignore files.
package ignore

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/rulesync/pkg/fsutil"
	"github.com/yaklabco/rulesync/pkg/output"
)

// DefaultFilename is the conventional ignore declaration file.
const DefaultFilename = ".rulesyncignore"

// Patterns is an ordered set of glob patterns. Empty means nothing to ignore.
type Patterns struct {
	Patterns []string
}

// Empty reports whether there are no patterns.
func (p Patterns) Empty() bool {
	return len(p.Patterns) == 0
}

// Loader supplies ignore patterns for a base directory.
type Loader interface {
	Load(ctx context.Context, baseDir string) (Patterns, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, baseDir string) (Patterns, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, baseDir string) (Patterns, error) {
	return f(ctx, baseDir)
}

// Static returns a Loader that always yields patterns.
func Static(patterns ...string) Loader {
	return LoaderFunc(func(context.Context, string) (Patterns, error) {
		return Patterns{Patterns: patterns}, nil
	})
}

// None is a Loader that never yields patterns.
var None Loader = Static() //nolint:gochecknoglobals // Stateless sentinel loader.

// FileLoader reads patterns from a file relative to the base directory.
type FileLoader struct {
	// Filename is the ignore file name. Defaults to DefaultFilename.
	Filename string
}

// Load reads the ignore file under baseDir. A missing file yields empty patterns.
// Blank lines and lines starting with '#' are skipped.
func (l FileLoader) Load(ctx context.Context, baseDir string) (Patterns, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}

	path := filepath.Join(baseDir, name)
	content, err := fsutil.ReadFileIfExists(ctx, path)
	if err != nil {
		return Patterns{}, fmt.Errorf("load ignore patterns: %w", err)
	}

	return Parse(string(content)), nil
}

// Parse extracts patterns from ignore file content.
func Parse(content string) Patterns {
	var patterns []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return Patterns{Patterns: patterns}
}

// GenerateFile renders patterns as an ignore file for tool.
func GenerateFile(patterns []string, tool output.Tool) string {
	lines := make([]string, 0, len(patterns)+3)
	lines = append(lines,
		"# Generated by rulesync from "+DefaultFilename,
		"# This file is automatically generated for "+string(tool),
		"",
	)
	lines = append(lines, patterns...)
	return strings.Join(lines, "\n") + "\n"
}
