package console

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/abdidvp/appatch/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(stepColor)
	okStyle    = lipgloss.NewStyle().Foreground(okColor)
	failStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(warnColor)
	rule       = strings.Repeat("=", 80)
)

// RenderBanner frames a title between two rules.
func RenderBanner(title string) string {
	return rule + "\n" + titleStyle.Render(title) + "\n" + rule + "\n\n"
}

// RenderReport lists the fixes and warnings of a run.
func RenderReport(r *domain.PatchReport) string {
	var b strings.Builder
	b.WriteString("Fixes applied:\n")
	if len(r.Fixes) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, f := range r.Fixes {
		fmt.Fprintf(&b, "  - %s\n", f)
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", warnStyle.Render(w))
		}
	}
	if len(r.Errors) > 0 {
		b.WriteString("\nErrors:\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  - %s\n", failStyle.Render(e))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderVerification renders one row per required file.
func RenderVerification(entries []domain.VerifyEntry) string {
	var buf bytes.Buffer
	table := newTable(&buf, "File", "Status")
	for _, e := range entries {
		status := okStyle.Render("OK")
		if !e.Exists {
			status = failStyle.Render("FAIL")
		}
		table.Append([]string{e.Path, status})
	}
	table.Render()
	return buf.String()
}

// RenderRules renders the include-fix table.
func RenderRules(rs domain.RuleSet) string {
	var buf bytes.Buffer
	table := newTable(&buf, "Target", "Pattern", "Replacement")
	for _, tr := range rs {
		for _, r := range tr.Rules {
			table.Append([]string{tr.Target, r.Pattern.String(), strings.ReplaceAll(r.Replacement, "\n", `\n`)})
		}
	}
	table.Render()
	return buf.String()
}

// RenderInsertions renders the anchor insertions applied to file.
func RenderInsertions(file string, ins []domain.Insertion) string {
	var buf bytes.Buffer
	table := newTable(&buf, "File", "Anchor", "Skipped when present")
	for _, in := range ins {
		table.Append([]string{file, in.Anchor.String(), strings.Join(in.Present, ", ")})
	}
	table.Render()
	return buf.String()
}

// RenderHistory renders recorded runs, oldest first.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "No run history found.\n"
	}
	var buf bytes.Buffer
	table := newTable(&buf, "Time", "Commit", "State", "Fixes", "Warnings", "Verified")
	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "-"
		}
		verified := "no"
		if e.Verified {
			verified = "yes"
		}
		table.Append([]string{
			e.Timestamp, hash, string(e.State),
			fmt.Sprintf("%d", e.Fixes), fmt.Sprintf("%d", e.Warnings), verified,
		})
	}
	table.Render()
	return buf.String()
}

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
