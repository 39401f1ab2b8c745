package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nrminor/dotlint/internal/domain"
)

// TOMLSyntax parses every tracked .toml file with a strict TOML decoder.
// Unreadable files are skipped; only parse failures on content that was
// actually read become issues.
type TOMLSyntax struct {
	inspector domain.RepoInspector
}

func NewTOMLSyntax(inspector domain.RepoInspector) *TOMLSyntax {
	return &TOMLSyntax{inspector: inspector}
}

func (r *TOMLSyntax) Evaluate(cfg *domain.Config) (*domain.ValidationResult, error) {
	tracked, err := r.inspector.ListTracked()
	if err != nil {
		return nil, err
	}

	var selected []string
	for _, file := range tracked {
		if strings.HasSuffix(file, ".toml") {
			selected = append(selected, file)
		}
	}

	var issues []domain.Issue
	for _, file := range selected {
		content, err := os.ReadFile(filepath.Join(cfg.Root, file))
		if err != nil {
			continue
		}
		var doc map[string]any
		if _, err := toml.Decode(string(content), &doc); err != nil {
			issues = append(issues, domain.
				NewIssue(domain.SeverityError, fmt.Sprintf("Invalid TOML syntax: %s", file)).
				WithFile(file))
		}
	}

	name := fmt.Sprintf("All %d TOML files are valid", len(selected))
	return domain.NewValidationResult(name, len(issues) == 0, issues), nil
}
