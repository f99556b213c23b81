package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/rulesync/pkg/output"
	"github.com/yaklabco/rulesync/pkg/rule"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatStatus renders a write status with its color.
func (s *Styles) FormatStatus(status output.Status) string {
	switch status {
	case output.StatusCreated:
		return s.Created.Render(string(status))
	case output.StatusUpdated:
		return s.Updated.Render(string(status))
	default:
		return s.Unchanged.Render(string(status))
	}
}

// FormatFileResults lists every file with its status, one per line.
func (s *Styles) FormatFileResults(result *output.WriteResult) string {
	var builder strings.Builder
	for _, file := range result.Files {
		fmt.Fprintf(&builder, "  %-9s %s\n", s.FormatStatus(file.Status), file.Path)
	}
	return builder.String()
}

// FormatWriteSummary formats a write result as a single line.
// Example: "Wrote 5 files (2 created, 1 updated, 2 unchanged), 3.1 kB".
func (s *Styles) FormatWriteSummary(result *output.WriteResult, dryRun bool) string {
	total := len(result.Files)
	fileWord := wordFiles
	if total == 1 {
		fileWord = wordFile
	}

	verb := "Wrote"
	if dryRun {
		verb = "Would write"
	}

	var counts []string
	if n := result.Count(output.StatusCreated); n > 0 {
		counts = append(counts, s.Created.Render(fmt.Sprintf("%d created", n)))
	}
	if n := result.Count(output.StatusUpdated); n > 0 {
		counts = append(counts, s.Updated.Render(fmt.Sprintf("%d updated", n)))
	}
	if n := result.Count(output.StatusUnchanged); n > 0 {
		counts = append(counts, s.Unchanged.Render(fmt.Sprintf("%d unchanged", n)))
	}

	line := fmt.Sprintf("%s %d %s", verb, total, fileWord)
	if len(counts) > 0 {
		line += " (" + strings.Join(counts, ", ") + ")"
	}
	return line + s.Dim.Render(", "+result.HumanBytes()) + "\n"
}

// FormatCheckSummary reports whether generated files are current.
func (s *Styles) FormatCheckSummary(result *output.WriteResult) string {
	stale := result.Stale()
	if len(stale) == 0 {
		return s.Success.Render("Generated files are up to date") +
			s.Dim.Render(fmt.Sprintf(" (%d checked)", len(result.Files))) + "\n"
	}

	var builder strings.Builder
	fileWord := wordFiles
	if len(stale) == 1 {
		fileWord = wordFile
	}
	builder.WriteString(s.Failure.Render(fmt.Sprintf("%d %s out of date", len(stale), fileWord)))
	builder.WriteString("\n")
	for _, file := range stale {
		fmt.Fprintf(&builder, "  %-9s %s\n", s.FormatStatus(file.Status), file.Path)
	}
	return builder.String()
}

// FormatDiff colors a unified diff line by line.
func (s *Styles) FormatDiff(diff string) string {
	if diff == "" {
		return ""
	}

	lines := strings.SplitAfter(diff, "\n")
	var builder strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		newline := line[len(text):]

		switch {
		case strings.HasPrefix(text, "---"), strings.HasPrefix(text, "+++"):
			builder.WriteString(s.DiffHeader.Render(text))
		case strings.HasPrefix(text, "@@"):
			builder.WriteString(s.DiffHunk.Render(text))
		case strings.HasPrefix(text, "+"):
			builder.WriteString(s.DiffAdd.Render(text))
		case strings.HasPrefix(text, "-"):
			builder.WriteString(s.DiffRemove.Render(text))
		default:
			builder.WriteString(text)
		}
		builder.WriteString(newline)
	}
	return builder.String()
}

// FormatIssue renders one validation issue.
// Example: "error   go-style: globs: invalid glob "[x"".
func (s *Styles) FormatIssue(issue rule.Issue) string {
	sev := s.Warning.Render(fmt.Sprintf("%-7s", issue.Severity))
	if issue.Severity == rule.SeverityError {
		sev = s.Error.Render(fmt.Sprintf("%-7s", issue.Severity))
	}
	return fmt.Sprintf("%s %s: %s %s",
		sev,
		s.Bold.Render(issue.Rule),
		s.Dim.Render(issue.Field+":"),
		issue.Message,
	)
}

// FormatIssueSummary formats validation results as a single line.
func (s *Styles) FormatIssueSummary(issues []rule.Issue, checked int) string {
	if len(issues) == 0 {
		return s.Success.Render("No issues found") + s.Dim.Render(fmt.Sprintf(" (%d rules checked)", checked)) + "\n"
	}

	var errs, warns int
	for _, issue := range issues {
		if issue.Severity == rule.SeverityError {
			errs++
		} else {
			warns++
		}
	}

	var parts []string
	if errs > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d errors", errs)))
	}
	if warns > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d warnings", warns)))
	}

	issueWord := "issues"
	if len(issues) == 1 {
		issueWord = "issue"
	}
	return fmt.Sprintf("%d %s (%s) in %d rules checked\n", len(issues), issueWord, strings.Join(parts, ", "), checked)
}
