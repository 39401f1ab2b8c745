package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nrminor/dotlint/internal/domain"
)

// FilesTracked validates every source file referenced by the dotter
// documents: it must exist on disk and be tracked by git. An ignored file
// is an error (deployment would silently skip it); an untracked file is
// only a warning, so the rule passes on warning-only issue sets.
type FilesTracked struct {
	refs      domain.ReferenceSource
	inspector domain.RepoInspector
	log       domain.Logger
}

func NewFilesTracked(refs domain.ReferenceSource, inspector domain.RepoInspector, log domain.Logger) *FilesTracked {
	return &FilesTracked{refs: refs, inspector: inspector, log: log}
}

func (r *FilesTracked) Evaluate(cfg *domain.Config) (*domain.ValidationResult, error) {
	sources, err := r.refs.ReferencedSources(cfg.Root)
	if err != nil {
		return nil, err
	}

	if cfg.Verbose {
		r.log.Infof("Found %d files referenced in dotter configs", len(sources))
	}

	var issues []domain.Issue
	for _, source := range sources {
		path := filepath.Join(cfg.Root, source)

		if _, err := os.Stat(path); err != nil {
			issues = append(issues, domain.
				NewIssue(domain.SeverityError, fmt.Sprintf("File missing: %s", source)).
				WithFile(source))
			continue
		}

		if r.inspector.IsTracked(source) {
			continue
		}

		if r.inspector.IsIgnored(source) {
			issues = append(issues, domain.
				NewIssue(domain.SeverityError, fmt.Sprintf("File ignored by git: %s", source)).
				WithFile(source).
				WithFix(fmt.Sprintf("Add to .gitignore: !%s", source)))
		} else {
			issues = append(issues, domain.
				NewIssue(domain.SeverityWarning, fmt.Sprintf("File not tracked: %s", source)).
				WithFile(source).
				WithFix(fmt.Sprintf("Run: git add %s", source)))
		}
	}

	passed := true
	for _, issue := range issues {
		if issue.Severity != domain.SeverityWarning {
			passed = false
			break
		}
	}

	return domain.NewValidationResult("Dotter files exist and are tracked", passed, issues), nil
}
