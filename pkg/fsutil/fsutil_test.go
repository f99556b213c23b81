package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/rulesync/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rule.md")
		if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "hello" {
			t.Errorf("content = %q, want %q", got, "hello")
		}
	})

	t.Run("missing file is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory is ErrIsDirectory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.ReadFile(ctx, "whatever")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestReadFileIfExists(t *testing.T) {
	t.Parallel()

	got, err := fsutil.ReadFileIfExists(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("ReadFileIfExists() error = %v", err)
	}
	if got != nil {
		t.Errorf("content = %q, want nil", got)
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fsutil.Exists(path) {
		t.Error("Exists(file) = false, want true")
	}
	if fsutil.Exists(dir) {
		t.Error("Exists(dir) = true, want false")
	}
	if !fsutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fsutil.DirExists(path) {
		t.Error("DirExists(file) = true, want false")
	}
}
