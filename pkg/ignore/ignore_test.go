package ignore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rulesync/pkg/ignore"
	"github.com/yaklabco/rulesync/pkg/output"
)

func TestFileLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty patterns", func(t *testing.T) {
		t.Parallel()

		patterns, err := ignore.FileLoader{}.Load(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.True(t, patterns.Empty())
	})

	t.Run("skips comments and blank lines", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := "# secrets\n.env\n\n  dist/**  \n#build\ntmp/\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ignore.DefaultFilename), []byte(content), 0o644))

		patterns, err := ignore.FileLoader{}.Load(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, []string{".env", "dist/**", "tmp/"}, patterns.Patterns)
	})

	t.Run("custom filename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".aiignore"), []byte("*.log\n"), 0o644))

		patterns, err := ignore.FileLoader{Filename: ".aiignore"}.Load(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"*.log"}, patterns.Patterns)
	})
}

func TestGenerateFile(t *testing.T) {
	t.Parallel()

	got := ignore.GenerateFile([]string{".env", "dist/**"}, output.ToolCursor)
	want := "# Generated by rulesync from .rulesyncignore\n" +
		"# This file is automatically generated for cursor\n" +
		"\n" +
		".env\n" +
		"dist/**\n"
	assert.Equal(t, want, got)
}

func TestStatic(t *testing.T) {
	t.Parallel()

	patterns, err := ignore.Static("a", "b").Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, patterns.Patterns)

	patterns, err = ignore.None.Load(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, patterns.Empty())
}
