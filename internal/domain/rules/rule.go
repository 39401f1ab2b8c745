// Package rules contains the validation rules run against a dotfiles
// repository. Rules are independent and stateless: each reads the shared
// Config plus its injected ports and produces one ValidationResult. A
// non-nil error from Evaluate aborts the whole run.
package rules

import "github.com/nrminor/dotlint/internal/domain"

// Rule is a single repository check.
type Rule interface {
	Evaluate(cfg *domain.Config) (*domain.ValidationResult, error)
}
