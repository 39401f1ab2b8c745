package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nrminor/dotlint/internal/domain"
)

// NoBrokenSymlinks flags every tracked file that is a symbolic link whose
// target cannot be resolved.
type NoBrokenSymlinks struct {
	inspector domain.RepoInspector
}

func NewNoBrokenSymlinks(inspector domain.RepoInspector) *NoBrokenSymlinks {
	return &NoBrokenSymlinks{inspector: inspector}
}

func (r *NoBrokenSymlinks) Evaluate(cfg *domain.Config) (*domain.ValidationResult, error) {
	tracked, err := r.inspector.ListTracked()
	if err != nil {
		return nil, err
	}

	var issues []domain.Issue
	for _, file := range tracked {
		if isBrokenSymlink(filepath.Join(cfg.Root, file)) {
			issues = append(issues, domain.
				NewIssue(domain.SeverityError, fmt.Sprintf("Broken symlink: %s", file)).
				WithFile(file))
		}
	}

	return domain.NewValidationResult("No broken symlinks", len(issues) == 0, issues), nil
}

// isBrokenSymlink reports whether path is itself a symlink (per Lstat)
// whose target does not resolve (per Stat).
func isBrokenSymlink(path string) bool {
	fi, err := os.Lstat(path)
	if err != nil || fi.Mode()&os.ModeSymlink == 0 {
		return false
	}
	_, err = os.Stat(path)
	return err != nil
}
