package domain

import (
	"fmt"
	"path/filepath"
)

// Settings holds tool configuration loaded from the optional .dotlint.yaml
// at the repository root. Empty fields fall back to defaults, so an
// absent file reproduces the stock behavior.
type Settings struct {
	// RequiredConfigs are dotter documents that must exist.
	RequiredConfigs []string `yaml:"required_configs"`

	// OptionalConfigs are additional documents scanned for file
	// references when present.
	OptionalConfigs []string `yaml:"optional_configs"`

	// JSONExceptions are path substrings exempt from strict JSON
	// validation, for tools whose config files allow comments.
	JSONExceptions []string `yaml:"json_exceptions"`
}

// DefaultSettings returns the stock dotter layout.
func DefaultSettings() Settings {
	return Settings{
		RequiredConfigs: []string{".dotter/global.toml"},
		OptionalConfigs: []string{".dotter/macos.toml"},
		JSONExceptions:  []string{"/.config/zed/"},
	}
}

// Validate rejects settings that cannot name repository files.
func (s Settings) Validate() error {
	for _, group := range [][]string{s.RequiredConfigs, s.OptionalConfigs} {
		for _, p := range group {
			if p == "" {
				return fmt.Errorf("config path must not be empty")
			}
			if filepath.IsAbs(p) {
				return fmt.Errorf("config path must be repository-relative: %s", p)
			}
		}
	}
	for _, e := range s.JSONExceptions {
		if e == "" {
			return fmt.Errorf("json exception pattern must not be empty")
		}
	}
	return nil
}

// ConfigDocuments returns every document scanned for file references, in
// required-then-optional order.
func (s Settings) ConfigDocuments() []string {
	docs := make([]string, 0, len(s.RequiredConfigs)+len(s.OptionalConfigs))
	docs = append(docs, s.RequiredConfigs...)
	docs = append(docs, s.OptionalConfigs...)
	return docs
}

// Merge overlays explicit values on top of defaults. Non-empty lists win.
func (s Settings) Merge(defaults Settings) Settings {
	result := defaults
	if len(s.RequiredConfigs) > 0 {
		result.RequiredConfigs = s.RequiredConfigs
	}
	if len(s.OptionalConfigs) > 0 {
		result.OptionalConfigs = s.OptionalConfigs
	}
	if len(s.JSONExceptions) > 0 {
		result.JSONExceptions = s.JSONExceptions
	}
	return result
}
