package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nrminor/dotlint/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

const (
	symbolSuccess = "✓"
	symbolFailure = "✗"
	symbolWarning = "⚠"
	symbolInfo    = "ℹ"
)

// RenderHeader formats the run banner printed before any rule executes.
func RenderHeader() string {
	return "\n" + headerStyle.Render("Validating dotfiles repository...") + "\n\n"
}

// RenderResult formats one rule outcome: a pass/fail line followed by the
// rule's issues in discovery order, each with its file and fix hint.
func RenderResult(result *domain.ValidationResult) string {
	var b strings.Builder

	if result.Passed {
		b.WriteString(passStyle.Render(fmt.Sprintf("%s %s", symbolSuccess, result.RuleName)))
	} else {
		b.WriteString(failStyle.Render(fmt.Sprintf("%s %s", symbolFailure, result.RuleName)))
	}
	b.WriteString("\n")

	for _, issue := range result.Issues {
		renderIssue(&b, issue)
	}

	return b.String()
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	message := issue.Message
	if issue.File != "" && !strings.Contains(message, issue.File) {
		message = fmt.Sprintf("%s (%s)", message, issue.File)
	}

	switch issue.Severity {
	case domain.SeverityError:
		b.WriteString(failStyle.Render(fmt.Sprintf("  %s %s", symbolFailure, message)))
	case domain.SeverityWarning:
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %s %s", symbolWarning, message)))
	default:
		b.WriteString(infoStyle.Render(fmt.Sprintf("  %s %s", symbolInfo, message)))
	}
	b.WriteString("\n")

	if issue.FixSuggestion != "" {
		b.WriteString(infoStyle.Render(fmt.Sprintf("    %s %s", symbolInfo, issue.FixSuggestion)))
		b.WriteString("\n")
	}
}

// RenderSummary formats the aggregate report. In fix mode a failing run
// additionally lists the remediation groups: .gitignore negations to add
// and a single git add command covering every untracked file.
func RenderSummary(sum *domain.Summary, fixMode bool) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")

	switch {
	case sum.Errors > 0:
		b.WriteString(failStyle.Render(fmt.Sprintf(
			"%s Validation failed: %d issue(s) found (%d errors, %d warnings)",
			symbolFailure, sum.Total, sum.Errors, sum.Warnings)))
		b.WriteString("\n")
		if fixMode {
			renderFixGroups(&b, sum)
		}
	case sum.Warnings > 0:
		b.WriteString(warnStyle.Render(fmt.Sprintf(
			"%s Validation completed with %d warning(s)", symbolWarning, sum.Warnings)))
		b.WriteString("\n")
	default:
		b.WriteString(passStyle.Render(symbolSuccess + " All validations passed!"))
		b.WriteString("\n")
	}

	return b.String()
}

func renderFixGroups(b *strings.Builder, sum *domain.Summary) {
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Fix suggestions:"))
	b.WriteString("\n\n")

	if len(sum.IgnoredPaths) > 0 {
		b.WriteString(infoStyle.Render(symbolInfo + " Add these lines to .gitignore:"))
		b.WriteString("\n")
		for _, file := range sum.IgnoredPaths {
			b.WriteString(passStyle.Render(fmt.Sprintf("  !%s", file)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(sum.UntrackedPaths) > 0 {
		b.WriteString(infoStyle.Render(symbolInfo + " Run this command to track files:"))
		b.WriteString("\n")
		b.WriteString(passStyle.Render(fmt.Sprintf("  git add %s", strings.Join(sum.UntrackedPaths, " "))))
		b.WriteString("\n\n")
	}
}

// RenderCommit formats the verbose HEAD line under the header.
func RenderCommit(hash string) string {
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return dimStyle.Render(fmt.Sprintf("HEAD at %s", hash)) + "\n"
}
