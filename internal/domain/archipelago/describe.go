package archipelago

// RuleView is a printable form of one include rule.
type RuleView struct {
	Target      string `json:"target"       yaml:"target"`
	Pattern     string `json:"pattern"      yaml:"pattern"`
	Replacement string `json:"replacement"  yaml:"replacement"`
	AppliedWhen string `json:"applied_when" yaml:"applied_when"`
}

// InsertionView is a printable form of one build-file insertion.
type InsertionView struct {
	File    string   `json:"file"            yaml:"file"`
	Anchor  string   `json:"anchor"          yaml:"anchor"`
	Text    string   `json:"text"            yaml:"text"`
	Present []string `json:"skip_if_present" yaml:"skip_if_present"`
}

// Table is the full patch table in printable form.
type Table struct {
	Includes  []RuleView      `json:"includes"   yaml:"includes"`
	BuildFile []InsertionView `json:"build_file" yaml:"build_file"`
}

// Describe flattens IncludeRules and BuildFileInsertions.
func Describe() Table {
	var t Table
	for _, tr := range IncludeRules() {
		for _, r := range tr.Rules {
			t.Includes = append(t.Includes, RuleView{
				Target:      tr.Target,
				Pattern:     r.Pattern.String(),
				Replacement: r.Replacement,
				AppliedWhen: r.AppliedWhen.String(),
			})
		}
	}
	for _, in := range BuildFileInsertions() {
		t.BuildFile = append(t.BuildFile, InsertionView{
			File:    BuildFile,
			Anchor:  in.Anchor.String(),
			Text:    in.Text,
			Present: in.Present,
		})
	}
	return t
}
