package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file's path to form its sidecar backup.
const BackupSuffix = ".rulesync.bak"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies path to its sidecar backup before it is overwritten.
// Returns false without error when path does not exist.
// An existing backup is replaced so it always holds the last overwritten content.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	content, err := ReadFileIfExists(ctx, path)
	if err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}
	if content == nil {
		return false, nil
	}

	mode := DefaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	if err := WriteAtomic(ctx, BackupPath(path), content, mode); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}
	return true, nil
}
