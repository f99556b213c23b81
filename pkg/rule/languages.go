package rule

import (
	"path"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Languages returns the programming languages targeted by globs, sorted.
// Patterns such as "src/**/*.{ts,tsx}" are expanded per alternative.
// Patterns that name no recognizable file type are skipped.
func Languages(globs []string) []string {
	seen := make(map[string]struct{})
	for _, glob := range globs {
		for _, name := range expandBraces(path.Base(glob)) {
			if lang := languageForName(name); lang != "" {
				seen[lang] = struct{}{}
			}
		}
	}

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// CanonicalLanguage maps a code-fence info string like "ts" to a language name.
// Unknown aliases are returned unchanged.
func CanonicalLanguage(alias string) string {
	if lang, ok := enry.GetLanguageByAlias(alias); ok {
		return lang
	}
	return alias
}

func languageForName(name string) string {
	if strings.ContainsAny(name, "*?[") {
		ext := path.Ext(name)
		if ext == "" || strings.ContainsAny(ext, "*?[") {
			return ""
		}
		name = "file" + ext
	}

	if lang, _ := enry.GetLanguageByFilename(name); lang != "" {
		return lang
	}
	lang, _ := enry.GetLanguageByExtension(name)
	return lang
}

// expandBraces expands a single level of {a,b} alternatives.
func expandBraces(pattern string) []string {
	open := strings.IndexByte(pattern, '{')
	if open < 0 {
		return []string{pattern}
	}
	closing := strings.IndexByte(pattern[open:], '}')
	if closing < 0 {
		return []string{pattern}
	}
	closing += open

	prefix, suffix := pattern[:open], pattern[closing+1:]
	options := strings.Split(pattern[open+1:closing], ",")

	expanded := make([]string, 0, len(options))
	for _, option := range options {
		expanded = append(expanded, prefix+strings.TrimSpace(option)+suffix)
	}
	return expanded
}
