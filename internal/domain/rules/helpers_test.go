package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrminor/dotlint/internal/domain"
)

// fakeInspector is an in-memory domain.RepoInspector so rule tests never
// spawn a real git subprocess.
type fakeInspector struct {
	tracked map[string]bool
	ignored map[string]bool
	files   []string
	listErr error
}

func (f *fakeInspector) IsTracked(path string) bool { return f.tracked[path] }
func (f *fakeInspector) IsIgnored(path string) bool { return f.ignored[path] }

func (f *fakeInspector) ListTracked() ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.files, nil
}

// fakeRefs is an in-memory domain.ReferenceSource.
type fakeRefs struct {
	sources []string
	err     error
}

func (f *fakeRefs) ReferencedSources(string) ([]string, error) {
	return f.sources, f.err
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testConfig(root string) *domain.Config {
	return &domain.Config{Root: root}
}
