package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := runCommand(t, "init", "--dir", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, ".rulesync.yml"))
	assert.FileExists(t, filepath.Join(dir, ".rulesync", "overview.md"))
	assert.FileExists(t, filepath.Join(dir, ".rulesyncignore"))
	assert.Contains(t, out, "rulesync generate")

	// The initialized project generates cleanly.
	out, err = runCommand(t, "generate", "--config", filepath.Join(dir, ".rulesync.yml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 files")
	assert.FileExists(t, filepath.Join(dir, ".cursor", "rules", "overview.mdc"))
	assert.FileExists(t, filepath.Join(dir, ".cursorignore"))
}

func TestInit_TOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runCommand(t, "init", "--dir", dir, "--format", "toml")
	require.NoError(t, err)

	content := readProjectFile(t, dir, ".rulesync.toml")
	assert.Contains(t, content, `rules_dir = ".rulesync"`)
	assert.NoFileExists(t, filepath.Join(dir, ".rulesync.yml"))
}

func TestInit_SkipsExistingWithoutForce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectFile(t, dir, ".rulesyncignore", "keep-me\n")

	_, err := runCommand(t, "init", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "keep-me\n", readProjectFile(t, dir, ".rulesyncignore"))

	_, err = runCommand(t, "init", "--dir", dir, "--force")
	require.NoError(t, err)
	assert.NotEqual(t, "keep-me\n", readProjectFile(t, dir, ".rulesyncignore"))
}

func TestInit_InvalidFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runCommand(t, "init", "--dir", dir, "--format", "json")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, ".rulesync.yml"))
	assert.True(t, os.IsNotExist(statErr))
}
