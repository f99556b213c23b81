package rule

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/rulesync/pkg/fsutil"
)

// SourceExtension is the extension of rule source files.
const SourceExtension = ".md"

// LoadDir parses every rule file directly under dir.
// Rules are returned sorted by filename; subdirectories are not searched.
func LoadDir(ctx context.Context, dir string) ([]Rule, error) {
	paths, err := Discover(ctx, dir)
	if err != nil {
		return nil, err
	}

	rules := make([]Rule, 0, len(paths))
	for _, path := range paths {
		content, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("load rule: %w", err)
		}

		name := strings.TrimSuffix(filepath.Base(path), SourceExtension)
		parsed, err := Parse(name, content)
		if err != nil {
			return nil, fmt.Errorf("load rule %s: %w", path, err)
		}
		rules = append(rules, parsed)
	}

	return rules, nil
}

// Discover returns the rule source files in dir, sorted by name.
func Discover(ctx context.Context, dir string) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("discover rules: %w", ctx.Err())
	default:
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: rules directory %s", fsutil.ErrNotFound, dir)
		}
		return nil, fmt.Errorf("read rules directory %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by filename.
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if filepath.Ext(entry.Name()) != SourceExtension {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return paths, nil
}
