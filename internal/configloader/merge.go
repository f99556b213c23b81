package configloader

import (
	"slices"

	"github.com/yaklabco/rulesync/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Strings: override overwrites base if non-empty
//   - Slices: override replaces base entirely if non-nil
//   - Booleans: only true in override is visible, so a later source cannot unset them
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.RulesDir != "" {
		result.RulesDir = override.RulesDir
	}
	if override.OutputPaths.Cursor != "" {
		result.OutputPaths.Cursor = override.OutputPaths.Cursor
	}
	if override.IgnoreFile != "" {
		result.IgnoreFile = override.IgnoreFile
	}

	if override.BaseDirs != nil {
		result.BaseDirs = slices.Clone(override.BaseDirs)
	}
	if override.Targets != nil {
		result.Targets = slices.Clone(override.Targets)
	}

	if override.Backup {
		result.Backup = true
	}
	if override.DryRun {
		result.DryRun = true
	}
	if override.Check {
		result.Check = true
	}
	if override.Diff {
		result.Diff = true
	}
	if override.Watch {
		result.Watch = true
	}
	if override.NoIgnore {
		result.NoIgnore = true
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
