package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rulesync/internal/ui/pretty"
	"github.com/yaklabco/rulesync/pkg/rule"
)

func sampleRows() []pretty.TableRow {
	return []pretty.TableRow{
		{Name: "overview", Category: rule.CategoryAlways, Globs: []string{"**/*"}, Title: "Project overview"},
		{Name: "go-style", Category: rule.CategorySpecificFiles, Globs: []string{"**/*.go"}, Languages: []string{"Go"}},
		{Name: "notes", Category: rule.CategoryManual},
	}
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	out := formatter.FormatTable(sampleRows())

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "LANGUAGES")
	assert.True(t, strings.HasPrefix(lines[1], "===="))
	assert.Contains(t, lines[2], "overview")
	assert.Contains(t, lines[2], "always")
	assert.Contains(t, lines[2], "Project overview")
	assert.Contains(t, lines[3], "specificFiles")
	assert.Contains(t, lines[3], "Go")
	assert.Contains(t, lines[4], "manual")
}

func TestFormatTable_Empty(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)
	assert.Empty(t, formatter.FormatTable(nil))
}

func TestFormatTable_TruncatesLongTitle(t *testing.T) {
	t.Parallel()

	rows := []pretty.TableRow{{
		Name:     "long",
		Category: rule.CategoryIntelligently,
		Title:    strings.Repeat("word ", 40),
	}}

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)
	out := formatter.FormatTable(rows)
	assert.Contains(t, out, "...")
}

func TestFormatCounts(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)
	assert.Equal(t, "3 rules: 1 always, 1 manual, 1 specificFiles", formatter.FormatCounts(sampleRows()))
	assert.Equal(t, "0 rules", formatter.FormatCounts(nil))
}

func TestRowFor(t *testing.T) {
	t.Parallel()

	row := pretty.RowFor(rule.Rule{
		Filename:    "go-style",
		Frontmatter: rule.Frontmatter{Globs: rule.Globs{"**/*.go"}},
		Content:     "# Go style\n\nTabs.\n",
	})

	assert.Equal(t, "go-style", row.Name)
	assert.Equal(t, rule.CategorySpecificFiles, row.Category)
	assert.Equal(t, []string{"Go"}, row.Languages)
	assert.Equal(t, "Go style", row.Title)
}
