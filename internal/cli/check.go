package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rulesync/internal/logging"
	"github.com/yaklabco/rulesync/pkg/config"
	"github.com/yaklabco/rulesync/pkg/rule"
)

// ignoreSourceRule labels issues found in the ignore declaration file.
const ignoreSourceRule = "(ignore)"

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate rule sources",
		Long: `Validate every rule source and the ignore file.

Errors (such as malformed glob patterns) make the command exit non-zero.
Warnings point at frontmatter that has no effect on the generated file,
for example a description on an always rule, or globs that are dropped
because the rule also has a description.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	proj, err := loadProject(cmd, &config.Config{})
	if err != nil {
		return err
	}

	rules, err := proj.loadRules(ctx)
	if err != nil {
		return err
	}

	var issues []rule.Issue
	for _, r := range rules {
		issues = append(issues, rule.Validate(r)...)
	}

	if loader := proj.ignoreLoader(); loader != nil {
		patterns, err := loader.Load(ctx, proj.root())
		if err != nil {
			return err
		}
		logger.Debug("loaded ignore patterns", logging.FieldPatterns, len(patterns.Patterns))
		for _, pattern := range patterns.Patterns {
			if err := rule.ValidateGlob(pattern); err != nil {
				issues = append(issues, rule.Issue{
					Rule:     ignoreSourceRule,
					Field:    proj.cfg.IgnoreFile,
					Severity: rule.SeverityError,
					Message:  err.Error(),
				})
			}
		}
	}

	styles := newStyles(cmd)
	out := cmd.OutOrStdout()
	for _, issue := range issues {
		logger.Debug("validation issue",
			logging.FieldRule, issue.Rule,
			logging.FieldField, issue.Field,
			logging.FieldSeverity, issue.Severity,
		)
		fmt.Fprintln(out, styles.FormatIssue(issue))
	}
	fmt.Fprint(out, styles.FormatIssueSummary(issues, len(rules)))

	if rule.HasErrors(issues) {
		return ErrValidationFailed
	}
	return nil
}
