package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nrminor/dotlint/internal/domain"
)

// ConfigsExist checks that every required dotter document is present.
type ConfigsExist struct {
	required []string
}

func NewConfigsExist(required []string) *ConfigsExist {
	return &ConfigsExist{required: required}
}

func (r *ConfigsExist) Evaluate(cfg *domain.Config) (*domain.ValidationResult, error) {
	var issues []domain.Issue

	for _, doc := range r.required {
		path := filepath.Join(cfg.Root, doc)
		if _, err := os.Stat(path); err != nil {
			issues = append(issues, domain.
				NewIssue(domain.SeverityError, fmt.Sprintf("Dotter %s not found", filepath.Base(doc))).
				WithFile(path))
		}
	}

	return domain.NewValidationResult("Dotter configuration files exist", len(issues) == 0, issues), nil
}
