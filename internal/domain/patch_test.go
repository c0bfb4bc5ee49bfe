package domain_test

import (
	"regexp"
	"testing"

	"github.com/abdidvp/appatch/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPatchRule_ApplySkipsWhenApplied(t *testing.T) {
	rule := domain.PatchRule{
		Pattern:     regexp.MustCompile(`(?m)^(#include "a\.h")$`),
		Replacement: "${1}\n#include <vector>",
		AppliedWhen: domain.IncludeLine("<vector>"),
	}

	once := rule.Apply("#include \"a.h\"\nint x;\n")
	assert.Equal(t, "#include \"a.h\"\n#include <vector>\nint x;\n", once)
	assert.True(t, rule.Applied(once))
	assert.Equal(t, once, rule.Apply(once))
}

func TestPatchRule_NilPredicateNeverApplied(t *testing.T) {
	rule := domain.PatchRule{Pattern: regexp.MustCompile(`foo`), Replacement: "bar"}
	assert.False(t, rule.Applied("bar"))
	assert.Equal(t, "bar bar", rule.Apply("foo bar"))
}

func TestApplyRules_ReportsChange(t *testing.T) {
	rules := []domain.PatchRule{
		{Pattern: regexp.MustCompile(`old`), Replacement: "new", AppliedWhen: regexp.MustCompile(`new`)},
	}

	out, changed := domain.ApplyRules("old", rules)
	assert.True(t, changed)
	assert.Equal(t, "new", out)

	out, changed = domain.ApplyRules(out, rules)
	assert.False(t, changed)
	assert.Equal(t, "new", out)
}

func TestApplyRules_NoMatchIsUnchanged(t *testing.T) {
	rules := []domain.PatchRule{
		{Pattern: regexp.MustCompile(`absent`), Replacement: "x", AppliedWhen: regexp.MustCompile(`x`)},
	}
	out, changed := domain.ApplyRules("content", rules)
	assert.False(t, changed)
	assert.Equal(t, "content", out)
}

func TestInsertion_InsertsAfterFirstAnchor(t *testing.T) {
	in := domain.Insertion{
		Anchor:  regexp.MustCompile(`anchor\(\)`),
		Text:    "\ninserted",
		Present: []string{"inserted"},
	}

	out, ok := in.Apply("a\nanchor()\nb\nanchor()\n")
	assert.True(t, ok)
	assert.Equal(t, "a\nanchor()\ninserted\nb\nanchor()\n", out)

	again, ok := in.Apply(out)
	assert.False(t, ok)
	assert.Equal(t, out, again)
}

func TestInsertion_SplicesAtMatchEnd(t *testing.T) {
	in := domain.Insertion{Anchor: regexp.MustCompile(`ap_state\.cpp`), Text: "\n    ap_network_impl.cpp"}
	out, ok := in.Apply("    ap_state.cpp # core\nnext\n")
	assert.True(t, ok)
	assert.Equal(t, "    ap_state.cpp\n    ap_network_impl.cpp # core\nnext\n", out)
}

func TestInsertion_MissingAnchor(t *testing.T) {
	in := domain.Insertion{Anchor: regexp.MustCompile(`nope`), Text: "x", Present: []string{"x"}}
	out, ok := in.Apply("content")
	assert.False(t, ok)
	assert.Equal(t, "content", out)
}

func TestInsertion_AnyPresentTokenSkips(t *testing.T) {
	in := domain.Insertion{
		Anchor:  regexp.MustCompile(`a`),
		Text:    "\nb\nc",
		Present: []string{"b", "c"},
	}
	out, ok := in.Apply("a\nc")
	assert.False(t, ok)
	assert.Equal(t, "a\nc", out)
}

func TestIncludeLine_MatchesWholeLineOnly(t *testing.T) {
	re := domain.IncludeLine(`"ap_types.h"`)
	assert.True(t, re.MatchString("x\n#include \"ap_types.h\"\ny"))
	assert.True(t, re.MatchString("  #include  \"ap_types.h\"  "))
	assert.False(t, re.MatchString(`#include "../core/ap_types.h"`))
	assert.False(t, re.MatchString(`// #include "ap_types.h"`))
}

func TestRuleSet_Targets(t *testing.T) {
	rs := domain.RuleSet{{Target: "b"}, {Target: "a"}}
	assert.Equal(t, []string{"b", "a"}, rs.Targets())
}
