// Package rule defines the tool-agnostic rule model: a named document with
// YAML frontmatter and a Markdown body.
//
// Rules are classified into one of four categories that decide how they are
// presented to Cursor. Classification is total: every frontmatter maps to
// exactly one category.
package rule

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// TargetAll matches every tool in a rule's targets list.
const TargetAll = "*"

// Rule is a parsed rule source file.
type Rule struct {
	// Filename is the identifier of the rule, without extension.
	Filename string

	// Frontmatter holds the rule metadata.
	Frontmatter Frontmatter

	// Content is the raw Markdown body.
	Content string
}

// Frontmatter is the metadata block at the top of a rule file.
type Frontmatter struct {
	// Description tells the agent when the rule is relevant.
	Description string `yaml:"description,omitempty"`

	// Globs lists the file patterns the rule is attached to, in order.
	Globs Globs `yaml:"globs,omitempty"`

	// Type forces a category. Nil means the category is inferred.
	Type *Category `yaml:"cursorRuleType,omitempty"`

	// Root marks the project overview rule.
	Root bool `yaml:"root,omitempty"`

	// Targets restricts which tools receive the rule. Empty means all.
	Targets []string `yaml:"targets,omitempty"`
}

// AppliesTo reports whether the rule should be emitted for the named tool.
func (r Rule) AppliesTo(tool string) bool {
	targets := r.Frontmatter.Targets
	if len(targets) == 0 {
		return true
	}
	return slices.Contains(targets, TargetAll) || slices.Contains(targets, tool)
}

// Category classifies the rule's frontmatter.
func (r Rule) Category() Category {
	return Classify(r.Frontmatter)
}

// Globs is an ordered list of glob patterns.
// In YAML it may be written as a sequence or as a single comma-separated string.
type Globs []string

// UnmarshalYAML accepts either `globs: [a, b]` or `globs: "a,b"`.
func (g *Globs) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("decode globs: %w", err)
		}
		*g = splitGlobs(raw)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("decode globs: %w", err)
		}
		*g = list
		return nil
	default:
		return fmt.Errorf("decode globs: line %d: expected string or list", node.Line)
	}
}

func splitGlobs(raw string) Globs {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	globs := make(Globs, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			globs = append(globs, trimmed)
		}
	}
	return globs
}
