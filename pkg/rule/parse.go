package rule

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontmatterDelimiter opens and closes a frontmatter block.
const FrontmatterDelimiter = "---"

// ErrUnterminatedFrontmatter is returned when an opening "---" has no closing fence.
var ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter")

// Parse builds a Rule from the raw content of a rule file.
// The frontmatter block is optional; without it every field is empty and the
// whole file is the body. Leading blank lines of the body are dropped.
func Parse(filename string, content []byte) (Rule, error) {
	header, body, err := SplitFrontmatter(content)
	if err != nil {
		return Rule{}, fmt.Errorf("%s: %w", filename, err)
	}

	var fm Frontmatter
	if len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, &fm); err != nil {
			return Rule{}, fmt.Errorf("%s: parse frontmatter: %w", filename, err)
		}
	}

	return Rule{
		Filename:    filename,
		Frontmatter: fm,
		Content:     strings.TrimLeft(string(body), "\r\n"),
	}, nil
}

// SplitFrontmatter separates the YAML header from the body.
// If content does not start with a "---" line, header is nil and body is content.
func SplitFrontmatter(content []byte) (header, body []byte, err error) {
	first, rest, found := bytes.Cut(content, []byte("\n"))
	if !isDelimiter(first) {
		return nil, content, nil
	}
	if !found {
		return nil, nil, ErrUnterminatedFrontmatter
	}

	offset := 0
	for offset <= len(rest) {
		line, next, more := bytes.Cut(rest[offset:], []byte("\n"))
		if isDelimiter(line) {
			header = rest[:offset]
			if more {
				body = next
			}
			return header, body, nil
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}

	return nil, nil, ErrUnterminatedFrontmatter
}

func isDelimiter(line []byte) bool {
	return string(bytes.TrimRight(line, " \t\r")) == FrontmatterDelimiter
}
