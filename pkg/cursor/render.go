// Package cursor converts rules into Cursor's .mdc rule files and
// .cursorignore.
//
// An .mdc document is a fixed three-field header between "---" lines, a
// blank line, and the rule body. Cursor's parser is strict about field order
// and spelling, so the header is written by hand rather than through a YAML
// encoder.
package cursor

import (
	"strconv"
	"strings"

	"github.com/yaklabco/rulesync/pkg/rule"
)

// Header field keys, in output order.
const (
	KeyDescription = "description"
	KeyGlobs       = "globs"
	KeyAlwaysApply = "alwaysApply"
)

// globSeparator joins globs in the header. No spaces.
const globSeparator = ","

// Header is the frontmatter of an .mdc document.
type Header struct {
	Description string
	Globs       string
	AlwaysApply bool
}

// HeaderFor returns the header Cursor expects for r in category.
func HeaderFor(r rule.Rule, category rule.Category) Header {
	switch category {
	case rule.CategoryAlways:
		return Header{AlwaysApply: true}
	case rule.CategorySpecificFiles:
		return Header{Globs: strings.Join(r.Frontmatter.Globs, globSeparator)}
	case rule.CategoryIntelligently:
		return Header{Description: r.Frontmatter.Description}
	default:
		return Header{}
	}
}

// Render produces the .mdc document for r.
func Render(r rule.Rule, category rule.Category) string {
	header := HeaderFor(r, category)

	lines := []string{
		rule.FrontmatterDelimiter,
		field(KeyDescription, header.Description),
		field(KeyGlobs, header.Globs),
		field(KeyAlwaysApply, strconv.FormatBool(header.AlwaysApply)),
		rule.FrontmatterDelimiter,
		"",
		r.Content,
	}
	return strings.Join(lines, "\n")
}

// field writes "key: value", or "key:" when value is empty.
func field(key, value string) string {
	if value == "" {
		return key + ":"
	}
	return key + ": " + value
}
