package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrminor/dotlint/internal/domain"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	loader := New()
	settings, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoad_ExplicitValuesWinMergedWithDefaults(t *testing.T) {
	root := t.TempDir()
	content := `
required_configs:
  - .dotter/global.toml
  - .dotter/linux.toml
`
	require.NoError(t, os.WriteFile(filepath.Join(root, ".dotlint.yaml"), []byte(content), 0o644))

	settings, err := New().Load(root)
	require.NoError(t, err)

	assert.Equal(t, []string{".dotter/global.toml", ".dotter/linux.toml"}, settings.RequiredConfigs)
	assert.Equal(t, []string{".dotter/macos.toml"}, settings.OptionalConfigs, "unset fields fall back to defaults")
	assert.Equal(t, []string{"/.config/zed/"}, settings.JSONExceptions)
}

func TestLoad_MalformedYAMLIsError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".dotlint.yaml"), []byte("required_configs: ["), 0o644))

	_, err := New().Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".dotlint.yaml")
}

func TestLoad_InvalidSettingsRejected(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ".dotlint.yaml"),
		[]byte("required_configs:\n  - /etc/dotter.toml\n"),
		0o644,
	))

	_, err := New().Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .dotlint.yaml")
}
