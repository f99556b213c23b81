package rule

import "strings"

// WildcardAll is the glob that matches every file.
const WildcardAll = "**/*"

// Classify maps frontmatter to its category.
//
// An explicit Type wins. Otherwise:
//   - globs exactly ["**/*"]                  -> always
//   - no description, no globs                -> manual
//   - no description, globs                   -> specificFiles
//   - description, no globs                   -> intelligently
//   - description and globs (not wildcard)    -> intelligently
//
// The last case has no category of its own; the globs are dropped on output.
func Classify(fm Frontmatter) Category {
	if fm.Type != nil {
		return *fm.Type
	}

	descriptionEmpty := strings.TrimSpace(fm.Description) == ""
	globsEmpty := len(fm.Globs) == 0

	switch {
	case IsWildcardAll(fm.Globs):
		return CategoryAlways
	case descriptionEmpty && globsEmpty:
		return CategoryManual
	case descriptionEmpty:
		return CategorySpecificFiles
	default:
		return CategoryIntelligently
	}
}

// IsWildcardAll reports whether globs is exactly the single pattern "**/*".
func IsWildcardAll(globs []string) bool {
	return len(globs) == 1 && globs[0] == WildcardAll
}
