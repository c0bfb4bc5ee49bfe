package domain

import (
	"regexp"
	"strings"
)

// PatchRule is a single idempotent find-and-replace on a file.
//
// AppliedWhen matches the rule's own output. When it matches, the rule has
// already been applied and is skipped, so a second run never re-inserts text.
type PatchRule struct {
	Pattern     *regexp.Regexp
	Replacement string
	AppliedWhen *regexp.Regexp
}

// TargetRules groups the ordered rules for one file, relative to the
// integration root.
type TargetRules struct {
	Target string
	Rules  []PatchRule
}

// RuleSet is the ordered table of include fixes.
type RuleSet []TargetRules

// Targets returns the target paths in table order.
func (rs RuleSet) Targets() []string {
	out := make([]string, 0, len(rs))
	for _, t := range rs {
		out = append(out, t.Target)
	}
	return out
}

// Applied reports whether the rule's output is already present in content.
func (r PatchRule) Applied(content string) bool {
	return r.AppliedWhen != nil && r.AppliedWhen.MatchString(content)
}

// Apply runs the substitution unless the rule was already applied.
func (r PatchRule) Apply(content string) string {
	if r.Applied(content) {
		return content
	}
	return r.Pattern.ReplaceAllString(content, r.Replacement)
}

// ApplyRules runs rules in order and reports whether content changed.
func ApplyRules(content string, rules []PatchRule) (string, bool) {
	out := content
	for _, r := range rules {
		out = r.Apply(out)
	}
	return out, out != content
}

// Insertion places Text directly after the end of the first match of Anchor,
// unless any of the Present tokens already occurs in the content. Anything
// after the match on the same line ends up after Text.
type Insertion struct {
	Anchor  *regexp.Regexp
	Text    string
	Present []string
}

// Apply returns the content with Text inserted, and whether it was inserted.
// A missing anchor is not an error; the content is returned unchanged.
func (in Insertion) Apply(content string) (string, bool) {
	for _, tok := range in.Present {
		if strings.Contains(content, tok) {
			return content, false
		}
	}
	loc := in.Anchor.FindStringIndex(content)
	if loc == nil {
		return content, false
	}
	return content[:loc[1]] + in.Text + content[loc[1]:], true
}

// IncludeLine builds a pattern matching exactly one #include directive line.
func IncludeLine(header string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*#include[ \t]*` + regexp.QuoteMeta(header) + `[ \t]*$`)
}
