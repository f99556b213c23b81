package configloader

import (
	"strings"
	"testing"

	"github.com/yaklabco/rulesync/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RULESYNC_CURSOR_DIR", ".cursor/env")
	t.Setenv("RULESYNC_IGNORE_FILE", ".envignore")
	t.Setenv("RULESYNC_TARGETS", "cursor")
	t.Setenv("RULESYNC_BACKUP", "true")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.OutputPaths.Cursor != ".cursor/env" {
		t.Errorf("unexpected cursor dir %q", cfg.OutputPaths.Cursor)
	}
	if cfg.IgnoreFile != ".envignore" {
		t.Errorf("unexpected ignore file %q", cfg.IgnoreFile)
	}
	if !cfg.Backup {
		t.Error("expected backup enabled")
	}
}

func TestLoadFromEnv_InvalidBool(t *testing.T) {
	t.Setenv("RULESYNC_DRY_RUN", "maybe")

	err := LoadFromEnv(config.NewConfig())
	if err == nil {
		t.Fatal("expected error for invalid boolean")
	}
	if !strings.Contains(err.Error(), "RULESYNC_DRY_RUN") {
		t.Errorf("error should name the variable: %v", err)
	}
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	t.Parallel()

	if err := LoadFromEnv(nil); err != nil {
		t.Errorf("LoadFromEnv(nil) error = %v", err)
	}
}

func TestGetEnvVarName(t *testing.T) {
	t.Parallel()

	if got := GetEnvVarName("output_paths.cursor"); got != "RULESYNC_CURSOR_DIR" {
		t.Errorf("GetEnvVarName() = %q", got)
	}
	if got := GetEnvVarName("nope"); got != "" {
		t.Errorf("GetEnvVarName(unknown) = %q", got)
	}
}

func TestListEnvVars_Sorted(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Fatalf("expected %d vars, got %d", len(envMappings), len(vars))
	}
	for i := 1; i < len(vars); i++ {
		if vars[i-1].Name >= vars[i].Name {
			t.Errorf("vars not sorted at %d: %q >= %q", i, vars[i-1].Name, vars[i].Name)
		}
	}
}
