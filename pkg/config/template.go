package config

import "fmt"

// Template formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

const yamlTemplate = `# rulesync configuration
# See: https://github.com/yaklabco/rulesync

# Directory holding rule source files (*.md with YAML frontmatter)
rules_dir: .rulesync

# Project roots to generate into
base_dirs:
  - .

# Output directory per tool, relative to each base directory
output_paths:
  cursor: .cursor/rules

# Ignore declarations rendered into .cursorignore
ignore_file: .rulesyncignore

# Tools to generate for
targets:
  - cursor

# Save hand-edited generated files as <file>.rulesync.bak before overwriting
# backup: false
`

const tomlTemplate = `# rulesync configuration
# See: https://github.com/yaklabco/rulesync

# Directory holding rule source files (*.md with YAML frontmatter)
rules_dir = ".rulesync"

# Project roots to generate into
base_dirs = ["."]

# Ignore declarations rendered into .cursorignore
ignore_file = ".rulesyncignore"

# Tools to generate for
targets = ["cursor"]

# Save hand-edited generated files as <file>.rulesync.bak before overwriting
# backup = false

# Output directory per tool, relative to each base directory
[output_paths]
cursor = ".cursor/rules"
`

// GenerateTemplate returns a commented default configuration file.
func GenerateTemplate(format string) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		return []byte(yamlTemplate), nil
	case FormatTOML:
		return []byte(tomlTemplate), nil
	default:
		return nil, fmt.Errorf("unsupported template format %q: must be yaml or toml", format)
	}
}
