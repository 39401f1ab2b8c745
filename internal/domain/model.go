package domain

import "errors"

// Severity classifies an issue. Errors fail the run; warnings are advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ErrIssuesFound is returned by the CLI when error-severity issues were
// found. The summary has already been printed, so main suppresses the
// message and just exits non-zero.
var ErrIssuesFound = errors.New("validation failed")

// Issue is a single finding produced by a rule.
type Issue struct {
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	File          string   `json:"file,omitempty"`
	FixSuggestion string   `json:"fix_suggestion,omitempty"`
}

// NewIssue creates an issue with the required fields.
func NewIssue(severity Severity, message string) Issue {
	return Issue{Severity: severity, Message: message}
}

// WithFile attaches the repository-relative path the issue refers to.
func (i Issue) WithFile(file string) Issue {
	i.File = file
	return i
}

// WithFix attaches a remediation hint. Suggestions are never executed.
func (i Issue) WithFix(fix string) Issue {
	i.FixSuggestion = fix
	return i
}

// ValidationResult is the outcome of one rule. Issues keep discovery
// order. Passed follows the rule's own pass policy, which is not always
// "no issues": the tracking rule passes on warning-only issue sets.
type ValidationResult struct {
	RuleName string  `json:"rule_name"`
	Passed   bool    `json:"passed"`
	Issues   []Issue `json:"issues"`
}

// NewValidationResult creates a result for a named rule.
func NewValidationResult(ruleName string, passed bool, issues []Issue) *ValidationResult {
	return &ValidationResult{RuleName: ruleName, Passed: passed, Issues: issues}
}

// Config holds the run parameters. It is constructed once at startup and
// passed read-only to every rule.
type Config struct {
	Root    string
	Verbose bool
	FixMode bool
}
