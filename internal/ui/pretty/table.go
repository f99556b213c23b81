package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/rulesync/pkg/rule"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 5 // NAME, CATEGORY, GLOBS, LANGUAGES, TITLE
	minNameWidth     = 8
	minCategoryWidth = 8
	minGlobsWidth    = 12
	minLangWidth     = 9
	minTitleWidth    = 12
	heavySeparator   = "="
	emptyCell        = "-"
	defaultTermWidth = 100
)

// TableRow represents a single rule in the rules table.
type TableRow struct {
	Name      string
	Category  rule.Category
	Globs     []string
	Languages []string
	Title     string
}

// RowFor builds a table row from a rule.
func RowFor(r rule.Rule) TableRow {
	return TableRow{
		Name:      r.Filename,
		Category:  r.Category(),
		Globs:     r.Frontmatter.Globs,
		Languages: rule.Languages(r.Frontmatter.Globs),
		Title:     rule.Summarize(r.Content).Title,
	}
}

// TableFormatter formats rules as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type columnWidths struct {
	name      int
	category  int
	globs     int
	languages int
	title     int
}

// FormatTable renders rows with a header, separator, and category-colored cells.
func (t *TableFormatter) FormatTable(rows []TableRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth(widths))))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	return builder.String()
}

// FormatCounts renders a one-line category breakdown such as
// "4 rules: 1 always, 2 specificFiles, 1 intelligently".
func (t *TableFormatter) FormatCounts(rows []TableRow) string {
	counts := make(map[rule.Category]int)
	for _, row := range rows {
		counts[row.Category]++
	}

	var parts []string
	for _, c := range rule.Categories() {
		if counts[c] == 0 {
			continue
		}
		parts = append(parts, t.styles.Category(c).Render(fmt.Sprintf("%d %s", counts[c], c)))
	}

	noun := "rules"
	if len(rows) == 1 {
		noun = "rule"
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d %s", len(rows), noun)
	}
	return fmt.Sprintf("%d %s: %s", len(rows), noun, strings.Join(parts, ", "))
}

func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		name:      minNameWidth,
		category:  minCategoryWidth,
		globs:     minGlobsWidth,
		languages: minLangWidth,
		title:     minTitleWidth,
	}

	for _, row := range rows {
		widths.name = max(widths.name, utf8.RuneCountInString(row.Name))
		widths.category = max(widths.category, utf8.RuneCountInString(row.Category.String()))
		widths.globs = max(widths.globs, utf8.RuneCountInString(joinCell(row.Globs)))
		widths.languages = max(widths.languages, utf8.RuneCountInString(joinCell(row.Languages)))
		widths.title = max(widths.title, utf8.RuneCountInString(row.Title))
	}

	// Shrink the title first, then globs, then languages.
	shrink := func(col *int, minWidth int) {
		if excess := totalWidth(widths) - t.termWidth; excess > 0 {
			*col = max(minWidth, *col-excess)
		}
	}
	shrink(&widths.title, minTitleWidth)
	shrink(&widths.globs, minGlobsWidth)
	shrink(&widths.languages, minLangWidth)

	return widths
}

func totalWidth(widths columnWidths) int {
	return widths.name + widths.category + widths.globs + widths.languages + widths.title +
		tablePadding*tableColumnCount
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s  %-*s ",
		widths.name, "NAME",
		widths.category, "CATEGORY",
		widths.globs, "GLOBS",
		widths.languages, "LANGUAGES",
		widths.title, "TITLE",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	category := pad(row.Category.String(), widths.category)

	title := row.Title
	if title == "" {
		title = emptyCell
	}

	return fmt.Sprintf(" %s  %s  %s  %s  %s",
		pad(truncateString(row.Name, widths.name), widths.name),
		t.styles.Category(row.Category).Render(category),
		pad(truncateString(joinCell(row.Globs), widths.globs), widths.globs),
		t.styles.Dim.Render(pad(truncateString(joinCell(row.Languages), widths.languages), widths.languages)),
		truncateString(title, widths.title),
	)
}

func joinCell(values []string) string {
	if len(values) == 0 {
		return emptyCell
	}
	return strings.Join(values, ",")
}

func pad(str string, width int) string {
	if n := utf8.RuneCountInString(str); n < width {
		return str + strings.Repeat(" ", width-n)
	}
	return str
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
