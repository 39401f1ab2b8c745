package application

import (
	"github.com/nrminor/dotlint/internal/domain"
	"github.com/nrminor/dotlint/internal/domain/rules"
)

// ValidateService runs the validation rules against a repository in a
// fixed order and reduces their results to a summary.
type ValidateService struct {
	rules []rules.Rule
}

// NewValidateService creates a ValidateService. Rule order is the
// execution order.
func NewValidateService(ruleSet ...rules.Rule) *ValidateService {
	return &ValidateService{rules: ruleSet}
}

// Run executes every rule sequentially, collecting one result per rule.
// The first rule error aborts the run and discards results gathered so
// far: a repository whose own configuration cannot be read has nothing
// trustworthy to report.
func (s *ValidateService) Run(cfg *domain.Config) ([]*domain.ValidationResult, error) {
	results := make([]*domain.ValidationResult, 0, len(s.rules))
	for _, rule := range s.rules {
		result, err := rule.Evaluate(cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Summarize computes the aggregate report for a completed run.
func (s *ValidateService) Summarize(results []*domain.ValidationResult) *domain.Summary {
	return domain.Summarize(results)
}
