package cli

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/yaklabco/rulesync/internal/ui/pretty"
	"github.com/yaklabco/rulesync/pkg/config"
	"github.com/yaklabco/rulesync/pkg/cursor"
	"github.com/yaklabco/rulesync/pkg/rule"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Name          string        `json:"name"`
	Category      rule.Category `json:"category"`
	Description   string        `json:"description,omitempty"`
	Globs         []string      `json:"globs"`
	Languages     []string      `json:"languages"`
	Title         string        `json:"title,omitempty"`
	Headings      int           `json:"headings"`
	CodeLanguages []string      `json:"code_languages"`
	Targets       []string      `json:"targets,omitempty"`
	Root          bool          `json:"root,omitempty"`
	Output        string        `json:"output"`
}

func newListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rules and how they will be classified",
		Long: `List every rule source with its category, globs, the languages its
globs target, and the title of its first heading.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text or json")

	return cmd
}

func runList(cmd *cobra.Command, format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("invalid format %q: must be text or json", format)
	}

	ctx := commandContext(cmd)
	proj, err := loadProject(cmd, &config.Config{})
	if err != nil {
		return err
	}

	rules, err := proj.loadRules(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if format == formatJSON {
		infos := lo.Map(rules, func(r rule.Rule, _ int) ruleInfo {
			summary := rule.Summarize(r.Content)
			return ruleInfo{
				Name:          r.Filename,
				Category:      r.Category(),
				Description:   r.Frontmatter.Description,
				Globs:         lo.Ternary(r.Frontmatter.Globs == nil, []string{}, []string(r.Frontmatter.Globs)),
				Languages:     rule.Languages(r.Frontmatter.Globs),
				Title:         summary.Title,
				Headings:      summary.Headings,
				CodeLanguages: lo.Ternary(summary.CodeLanguages == nil, []string{}, summary.CodeLanguages),
				Targets:       r.Frontmatter.Targets,
				Root:          r.Frontmatter.Root,
				Output:        cursor.RulePath("", proj.cfg.OutputPaths.Cursor, r.Filename),
			}
		})

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(infos); err != nil {
			return fmt.Errorf("encode rules: %w", err)
		}
		return nil
	}

	if len(rules) == 0 {
		fmt.Fprintf(out, "no rules found in %s\n", proj.rel(proj.rulesDir()))
		return nil
	}

	rows := lo.Map(rules, func(r rule.Rule, _ int) pretty.TableRow {
		return pretty.RowFor(r)
	})

	formatter := pretty.NewTableFormatter(newStyles(cmd), pretty.TerminalWidth(out))
	fmt.Fprint(out, formatter.FormatTable(rows))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.FormatCounts(rows))

	return nil
}
