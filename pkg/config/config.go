// Package config defines core configuration types for rulesync.
// These types are pure data structures; discovery and merging live in internal/configloader.
package config

// Defaults for a fresh configuration.
const (
	DefaultRulesDir   = ".rulesync"
	DefaultCursorDir  = ".cursor/rules"
	DefaultIgnoreFile = ".rulesyncignore"
	DefaultBaseDir    = "."
)

// OutputPaths holds the destination directory per tool, relative to a base directory.
type OutputPaths struct {
	// Cursor is where .mdc rule files are written.
	Cursor string `mapstructure:"cursor" yaml:"cursor" toml:"cursor"`
}

// Config is the root configuration structure for rulesync.
type Config struct {
	// RulesDir is the directory holding rule source files.
	RulesDir string `mapstructure:"rules_dir" yaml:"rules_dir" toml:"rules_dir"`

	// BaseDirs are the project roots outputs are generated into.
	BaseDirs []string `mapstructure:"base_dirs" yaml:"base_dirs" toml:"base_dirs"`

	// OutputPaths configures the destination directory per tool.
	OutputPaths OutputPaths `mapstructure:"output_paths" yaml:"output_paths" toml:"output_paths"`

	// IgnoreFile is the name of the ignore declaration file. It is read once from the
	// project root and a .cursorignore is written into each base directory.
	IgnoreFile string `mapstructure:"ignore_file" yaml:"ignore_file" toml:"ignore_file"`

	// Targets lists the tools to generate for.
	Targets []string `mapstructure:"targets" yaml:"targets" toml:"targets"`

	// Backup saves hand-edited generated files before overwriting them.
	Backup bool `mapstructure:"backup" yaml:"backup" toml:"backup"`

	// CLI-level options (not persisted to config files).

	// DryRun reports what would be written without writing.
	DryRun bool `mapstructure:"-" yaml:"-" toml:"-"`

	// Check fails when generated files are out of date.
	Check bool `mapstructure:"-" yaml:"-" toml:"-"`

	// Diff prints a unified diff of pending changes.
	Diff bool `mapstructure:"-" yaml:"-" toml:"-"`

	// Watch regenerates whenever rule sources change.
	Watch bool `mapstructure:"-" yaml:"-" toml:"-"`

	// NoIgnore skips ignore file generation.
	NoIgnore bool `mapstructure:"-" yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		RulesDir: DefaultRulesDir,
		BaseDirs: []string{DefaultBaseDir},
		OutputPaths: OutputPaths{
			Cursor: DefaultCursorDir,
		},
		IgnoreFile: DefaultIgnoreFile,
		Targets:    []string{"cursor"},
	}
}
