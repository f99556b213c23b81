package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/rulesync/pkg/config"
	"github.com/yaklabco/rulesync/pkg/output"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "output_paths.cursor").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if strings.TrimSpace(cfg.RulesDir) == "" {
		result.addError("rules_dir", cfg.RulesDir, "rules directory must not be empty")
	}

	validateOutputDir(cfg.OutputPaths.Cursor, "output_paths.cursor", result)

	switch {
	case strings.TrimSpace(cfg.IgnoreFile) == "":
		result.addError("ignore_file", cfg.IgnoreFile, "ignore file name must not be empty")
	case strings.ContainsAny(cfg.IgnoreFile, `/\`):
		result.addError("ignore_file", cfg.IgnoreFile,
			"ignore file %q must be a file name, not a path", cfg.IgnoreFile)
	}

	if len(cfg.BaseDirs) == 0 {
		result.addError("base_dirs", cfg.BaseDirs, "at least one base directory is required")
	}
	for i, dir := range cfg.BaseDirs {
		if strings.TrimSpace(dir) == "" {
			result.addError(fmt.Sprintf("base_dirs[%d]", i), dir, "base directory must not be empty")
		}
	}

	validateTargets(cfg.Targets, result)

	return result
}

// validateOutputDir requires a non-empty path that stays inside the base directory.
func validateOutputDir(dir, field string, result *ValidationResult) {
	if strings.TrimSpace(dir) == "" {
		result.addError(field, dir, "output directory must not be empty")
		return
	}
	if filepath.IsAbs(dir) {
		result.addError(field, dir, "output directory %q must be relative to the base directory", dir)
		return
	}
	clean := filepath.Clean(dir)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		result.addError(field, dir, "output directory %q escapes the base directory", dir)
	}
}

func validateTargets(targets []string, result *ValidationResult) {
	if len(targets) == 0 {
		result.addWarning("targets", targets, "no targets configured; nothing will be generated")
		return
	}

	known := make([]string, 0, len(output.KnownTools()))
	for _, tool := range output.KnownTools() {
		known = append(known, string(tool))
	}

	for i, target := range targets {
		if target == "*" || output.Tool(target).IsKnown() {
			continue
		}
		result.addError(fmt.Sprintf("targets[%d]", i), target,
			"unknown target %q; must be one of: %s", target, strings.Join(known, ", "))
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
