package rule

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Summary describes the Markdown body of a rule.
type Summary struct {
	// Title is the text of the first heading, or empty.
	Title string

	// CodeLanguages lists the info strings of fenced code blocks, deduplicated in order.
	CodeLanguages []string

	// Headings counts all headings in the body.
	Headings int
}

// Summarize parses the rule body and extracts a Summary.
func Summarize(body string) Summary {
	source := []byte(body)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var summary Summary
	seen := make(map[string]struct{})

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			summary.Headings++
			if summary.Title == "" {
				summary.Title = strings.TrimSpace(inlineText(n, source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			lang := string(n.Language(source))
			if lang == "" {
				return ast.WalkSkipChildren, nil
			}
			if _, dup := seen[lang]; !dup {
				seen[lang] = struct{}{}
				summary.CodeLanguages = append(summary.CodeLanguages, lang)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return summary
}

// inlineText concatenates the text segments under node.
func inlineText(node ast.Node, source []byte) string {
	var buf strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(source))
			if c.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(c.Value)
		default:
			buf.WriteString(inlineText(child, source))
		}
	}
	return buf.String()
}
