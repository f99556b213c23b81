package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rulesync/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--color", "never"))

	err := cmd.Execute()
	return stdout.String(), err
}

// writeProjectFile writes content to dir/name, creating parent directories.
func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)

	assert.Equal(t, "rulesync", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"generate", "list", "check", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if !assert.NoError(t, err, "subcommand %q", name) {
			continue
		}
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestGenerateCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	generateCmd, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)

	for _, flag := range []string{"base-dir", "dry-run", "check", "diff", "watch", "no-ignore", "backup"} {
		assert.NotNil(t, generateCmd.Flags().Lookup(flag), "expected flag %q", flag)
	}
	for _, flag := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "expected global flag %q", flag)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "rulesync")
	assert.Contains(t, out, "test-version")
	assert.Contains(t, out, "test-commit")
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "generate", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--dry-run")
	assert.Contains(t, out, "Global Flags:")
	assert.Contains(t, out, "--config string")
}

func TestRootHelp_ListsEnvironment(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Environment:")
	for _, name := range []string{"RULESYNC_BASE_DIRS", "RULESYNC_CURSOR_DIR", "RULESYNC_DRY_RUN", "RULESYNC_RULES_DIR"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Directory holding rule sources")
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "lint")
	assert.Error(t, err)
}
