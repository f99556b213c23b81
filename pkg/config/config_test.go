package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rulesync/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, ".rulesync", cfg.RulesDir)
	assert.Equal(t, []string{"."}, cfg.BaseDirs)
	assert.Equal(t, ".cursor/rules", cfg.OutputPaths.Cursor)
	assert.Equal(t, ".rulesyncignore", cfg.IgnoreFile)
	assert.Equal(t, []string{"cursor"}, cfg.Targets)
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies slices and CLI fields", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		original.DryRun = true

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.True(t, clone.DryRun)

		clone.BaseDirs[0] = "changed"
		assert.Equal(t, ".", original.BaseDirs[0])
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Check = true

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "cursor: .cursor/rules")
	assert.NotContains(t, string(data), "check")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original.OutputPaths, parsed.OutputPaths)
	assert.Equal(t, original.BaseDirs, parsed.BaseDirs)
	assert.False(t, parsed.Check, "CLI-only fields are not serialized")
}

func TestFromTOML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromTOML([]byte(`
rules_dir = "rules"
base_dirs = ["app", "lib"]

[output_paths]
cursor = "out/rules"
`))
	require.NoError(t, err)
	assert.Equal(t, "rules", cfg.RulesDir)
	assert.Equal(t, []string{"app", "lib"}, cfg.BaseDirs)
	assert.Equal(t, "out/rules", cfg.OutputPaths.Cursor)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	for _, format := range []string{config.FormatYAML, config.FormatTOML} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			data, err := config.GenerateTemplate(format)
			require.NoError(t, err)

			var cfg *config.Config
			if format == config.FormatTOML {
				cfg, err = config.FromTOML(data)
			} else {
				cfg, err = config.FromYAML(data)
			}
			require.NoError(t, err)

			defaults := config.NewConfig()
			assert.Equal(t, defaults.RulesDir, cfg.RulesDir)
			assert.Equal(t, defaults.BaseDirs, cfg.BaseDirs)
			assert.Equal(t, defaults.OutputPaths, cfg.OutputPaths)
			assert.Equal(t, defaults.Targets, cfg.Targets)
		})
	}

	_, err := config.GenerateTemplate("json")
	assert.Error(t, err)
}
