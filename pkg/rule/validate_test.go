package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rulesync/pkg/rule"
)

func TestValidateGlob(t *testing.T) {
	t.Parallel()

	assert.NoError(t, rule.ValidateGlob("src/**/*.{ts,tsx}"))
	assert.Error(t, rule.ValidateGlob("src/[abc"))
	assert.Error(t, rule.ValidateGlob("  "))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	fields := func(issues []rule.Issue) []string {
		out := make([]string, 0, len(issues))
		for _, issue := range issues {
			out = append(out, string(issue.Severity)+":"+issue.Field)
		}
		return out
	}

	tests := []struct {
		name string
		fm   rule.Frontmatter
		want []string
	}{
		{"clean always", rule.Frontmatter{Globs: rule.Globs{"**/*"}}, []string{}},
		{"clean manual", rule.Frontmatter{}, []string{}},
		{"clean specific files", rule.Frontmatter{Globs: rule.Globs{"*.go"}}, []string{}},
		{"clean intelligently", rule.Frontmatter{Description: "d"}, []string{}},
		{"always drops description", rule.Frontmatter{Description: "d", Globs: rule.Globs{"**/*"}}, []string{"warning:description"}},
		{"collapse drops globs", rule.Frontmatter{Description: "d", Globs: rule.Globs{"*.go"}}, []string{"warning:globs"}},
		{"bad glob", rule.Frontmatter{Globs: rule.Globs{"[x"}}, []string{"error:globs"}},
		{
			"forced specificFiles without globs",
			rule.Frontmatter{Type: categoryPtr(rule.CategorySpecificFiles)},
			[]string{"warning:globs"},
		},
		{
			"forced manual with metadata",
			rule.Frontmatter{Description: "d", Type: categoryPtr(rule.CategoryManual)},
			[]string{"warning:cursorRuleType"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			issues := rule.Validate(rule.Rule{Filename: "r", Frontmatter: tc.fm})
			assert.Equal(t, tc.want, fields(issues))
		})
	}
}

func TestHasErrors(t *testing.T) {
	t.Parallel()

	issues := rule.Validate(rule.Rule{Filename: "r", Frontmatter: rule.Frontmatter{Globs: rule.Globs{"[x"}}})
	require.NotEmpty(t, issues)
	assert.True(t, rule.HasErrors(issues))
	assert.Equal(t, "r", issues[0].Rule)
	assert.False(t, rule.HasErrors(nil))
}
