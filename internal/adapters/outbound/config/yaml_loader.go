package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nrminor/dotlint/internal/domain"
)

const fileName = ".dotlint.yaml"

// YAMLLoader implements domain.SettingsLoader by reading .dotlint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .dotlint.yaml from the repository root.
// Returns DefaultSettings if the file does not exist.
func (l *YAMLLoader) Load(root string) (domain.Settings, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}

	var settings domain.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return settings.Merge(domain.DefaultSettings()), nil
}
