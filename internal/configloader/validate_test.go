package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rulesync/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(cfg *config.Config)
		wantField  string
		wantErrors int
	}{
		{"defaults", func(*config.Config) {}, "", 0},
		{"empty rules dir", func(cfg *config.Config) { cfg.RulesDir = " " }, "rules_dir", 1},
		{"empty output dir", func(cfg *config.Config) { cfg.OutputPaths.Cursor = "" }, "output_paths.cursor", 1},
		{"absolute output dir", func(cfg *config.Config) { cfg.OutputPaths.Cursor = "/rules" }, "output_paths.cursor", 1},
		{"escaping output dir", func(cfg *config.Config) { cfg.OutputPaths.Cursor = "../rules" }, "output_paths.cursor", 1},
		{"ignore file path", func(cfg *config.Config) { cfg.IgnoreFile = "a/.ignore" }, "ignore_file", 1},
		{"no base dirs", func(cfg *config.Config) { cfg.BaseDirs = nil }, "base_dirs", 1},
		{"blank base dir", func(cfg *config.Config) { cfg.BaseDirs = []string{".", " "} }, "base_dirs[1]", 1},
		{"unknown target", func(cfg *config.Config) { cfg.Targets = []string{"cursor", "vim"} }, "targets[1]", 1},
		{"wildcard target", func(cfg *config.Config) { cfg.Targets = []string{"*"} }, "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tc.mutate(cfg)

			result := Validate(cfg)
			require.Len(t, result.Errors, tc.wantErrors)
			if tc.wantErrors > 0 {
				assert.Equal(t, tc.wantField, result.Errors[0].Field)
				assert.False(t, result.Valid())
			}
		})
	}
}

func TestValidate_EmptyTargetsWarns(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Targets = []string{}

	result := Validate(cfg)
	assert.True(t, result.Valid())
	assert.True(t, result.HasWarnings())
	assert.Equal(t, []string{"warning: targets: no targets configured; nothing will be generated"}, result.AllMessages())
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Field: "rules_dir", Message: "bad", FilePath: ".rulesync.yml"}
	assert.Equal(t, ".rulesync.yml: rules_dir: bad", err.Error())
	assert.Equal(t, "bad", (&ValidationError{Message: "bad"}).Error())
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate(nil).Valid())
}
