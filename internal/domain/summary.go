package domain

import "strings"

// Summary is the aggregate of a full validation run.
type Summary struct {
	Total    int
	Errors   int
	Warnings int
	ExitCode int

	// IgnoredPaths are files whose fix suggestion is a .gitignore
	// negation; UntrackedPaths are files whose fix suggestion is a git
	// add. Both are only rendered in fix mode.
	IgnoredPaths   []string
	UntrackedPaths []string
}

// Summarize reduces all rule results to the final aggregate. Exit code is
// 1 iff at least one error-severity issue exists; warnings alone never
// fail the run.
func Summarize(results []*ValidationResult) *Summary {
	s := &Summary{}
	for _, r := range results {
		for _, issue := range r.Issues {
			s.Total++
			if issue.Severity == SeverityError {
				s.Errors++
			}

			if issue.File == "" {
				continue
			}
			switch {
			case strings.Contains(issue.FixSuggestion, ".gitignore"):
				s.IgnoredPaths = append(s.IgnoredPaths, issue.File)
			case strings.Contains(issue.FixSuggestion, "git add"):
				s.UntrackedPaths = append(s.UntrackedPaths, issue.File)
			}
		}
	}
	s.Warnings = s.Total - s.Errors
	if s.Errors > 0 {
		s.ExitCode = 1
	}
	return s
}
