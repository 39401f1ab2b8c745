package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nrminor/dotlint/internal/domain"
)

// JSONSyntax parses tracked .json and .jsonc files with the strict JSON
// grammar. Files ending in .jsonc and files under an excepted directory
// are selected but never checked, since those are allowed to carry
// comment syntax a strict parser rejects.
type JSONSyntax struct {
	inspector  domain.RepoInspector
	exceptions []string
}

func NewJSONSyntax(inspector domain.RepoInspector, exceptions []string) *JSONSyntax {
	return &JSONSyntax{inspector: inspector, exceptions: exceptions}
}

func (r *JSONSyntax) Evaluate(cfg *domain.Config) (*domain.ValidationResult, error) {
	tracked, err := r.inspector.ListTracked()
	if err != nil {
		return nil, err
	}

	var selected []string
	for _, file := range tracked {
		if strings.HasSuffix(file, ".json") || strings.HasSuffix(file, ".jsonc") {
			selected = append(selected, file)
		}
	}

	var issues []domain.Issue
	for _, file := range selected {
		if r.exempt(file) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(cfg.Root, file))
		if err != nil {
			continue
		}
		if !json.Valid(content) {
			issues = append(issues, domain.
				NewIssue(domain.SeverityError, fmt.Sprintf("Invalid JSON syntax: %s", file)).
				WithFile(file))
		}
	}

	name := fmt.Sprintf("All %d JSON files are valid", len(selected))
	return domain.NewValidationResult(name, len(issues) == 0, issues), nil
}

func (r *JSONSyntax) exempt(file string) bool {
	if strings.HasSuffix(file, ".jsonc") {
		return true
	}
	for _, pattern := range r.exceptions {
		if strings.Contains(file, pattern) {
			return true
		}
	}
	return false
}
