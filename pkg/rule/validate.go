package rule

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Severity ranks a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a problem found in a rule's frontmatter.
type Issue struct {
	Rule     string   `json:"rule"`
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s: %s", i.Rule, i.Severity, i.Field, i.Message)
}

// ValidateGlob reports whether pattern is a syntactically valid glob.
func ValidateGlob(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return fmt.Errorf("empty pattern")
	}
	if _, err := glob.Compile(pattern, '/'); err != nil {
		return fmt.Errorf("invalid glob %q: %w", pattern, err)
	}
	return nil
}

// Validate checks a rule for frontmatter that will not survive rendering as intended.
// It never affects classification.
func Validate(r Rule) []Issue {
	var issues []Issue
	add := func(field string, severity Severity, format string, args ...any) {
		issues = append(issues, Issue{
			Rule:     r.Filename,
			Field:    field,
			Severity: severity,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	for _, pattern := range r.Frontmatter.Globs {
		if err := ValidateGlob(pattern); err != nil {
			add("globs", SeverityError, "%v", err)
		}
	}

	if r.Frontmatter.Type != nil && !r.Frontmatter.Type.IsValid() {
		add("cursorRuleType", SeverityError, "unknown category %d", int(*r.Frontmatter.Type))
		return issues
	}

	hasDescription := strings.TrimSpace(r.Frontmatter.Description) != ""
	hasGlobs := len(r.Frontmatter.Globs) > 0

	switch r.Category() {
	case CategoryAlways:
		if hasDescription {
			add("description", SeverityWarning, "description is not emitted for always rules")
		}
		if hasGlobs && !IsWildcardAll(r.Frontmatter.Globs) {
			add("globs", SeverityWarning, "globs are not emitted for always rules")
		}
	case CategoryManual:
		if hasDescription || hasGlobs {
			add("cursorRuleType", SeverityWarning, "description and globs are not emitted for manual rules")
		}
	case CategorySpecificFiles:
		if hasDescription {
			add("description", SeverityWarning, "description is not emitted for specificFiles rules")
		}
		if !hasGlobs {
			add("globs", SeverityWarning, "specificFiles rule has no globs and will never attach")
		}
	case CategoryIntelligently:
		if hasGlobs {
			add("globs", SeverityWarning,
				"rule has both description and globs; it is emitted as intelligently and globs are dropped")
		}
		if !hasDescription {
			add("description", SeverityWarning, "intelligently rule has no description")
		}
	}

	if len(r.Frontmatter.Targets) == 0 && r.Frontmatter.Targets != nil {
		add("targets", SeverityWarning, "empty targets list applies the rule to every tool")
	}

	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
