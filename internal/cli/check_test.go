package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rulesync/internal/cli"
)

func TestCheck_Clean(t *testing.T) {
	t.Parallel()

	_, cfgPath := newProject(t)

	out, err := runCommand(t, "check", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found (4 rules checked)")
}

func TestCheck_WarningsDoNotFail(t *testing.T) {
	t.Parallel()

	dir, cfgPath := newProject(t)
	writeProjectFile(t, dir, ".rulesync/collapse.md", "---\ndescription: d\nglobs: [\"*.go\"]\n---\nBody\n")

	out, err := runCommand(t, "check", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "warning collapse: globs:")
}

func TestCheck_Errors(t *testing.T) {
	t.Parallel()

	dir, cfgPath := newProject(t)
	writeProjectFile(t, dir, ".rulesync/broken.md", "---\nglobs: [\"src/[abc\"]\n---\nBody\n")
	writeProjectFile(t, dir, ".rulesyncignore", "[oops\n")

	out, err := runCommand(t, "check", "--config", cfgPath)
	require.ErrorIs(t, err, cli.ErrValidationFailed)
	assert.True(t, cli.IsReported(err))

	assert.Contains(t, out, "error   broken: globs:")
	assert.Contains(t, out, "error   (ignore): .rulesyncignore:")
	assert.Contains(t, out, "2 issues (2 errors)")
}
