// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldRulesDir  = "rules_dir"
	FieldBaseDir   = "base_dir"
	FieldOutputDir = "output_dir"
	FieldTargets   = "targets"
	FieldDryRun    = "dry_run"

	// Rule fields.
	FieldRule     = "rule"
	FieldRules    = "rules"
	FieldCategory = "category"
	FieldGlobs    = "globs"
	FieldField    = "field"
	FieldSeverity = "severity"

	// Generation fields.
	FieldTool      = "tool"
	FieldRecords   = "records"
	FieldStatus    = "status"
	FieldCreated   = "created"
	FieldUpdated   = "updated"
	FieldUnchanged = "unchanged"
	FieldSize      = "size"
	FieldPatterns  = "patterns"
	FieldChanged   = "changed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
