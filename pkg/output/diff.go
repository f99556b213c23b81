package output

import (
	"context"
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/yaklabco/rulesync/pkg/fsutil"
)

// devNull labels the missing side of a diff for new files.
const devNull = "/dev/null"

// Diff renders a unified diff between the files on disk and records.
// Records that match the disk produce no output.
func Diff(ctx context.Context, records []Record) (string, error) {
	var buf strings.Builder

	for _, rec := range records {
		existing, err := fsutil.ReadFileIfExists(ctx, rec.Filepath)
		if err != nil {
			return "", fmt.Errorf("diff %s: %w", rec.Filepath, err)
		}
		if existing != nil && string(existing) == rec.Content {
			continue
		}

		oldLabel := rec.Filepath
		if existing == nil {
			oldLabel = devNull
		}

		buf.WriteString(udiff.Unified(oldLabel, rec.Filepath, string(existing), rec.Content))
	}

	return buf.String(), nil
}
