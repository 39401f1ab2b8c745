// Package dotter reads dotter configuration documents and extracts the
// source files they deploy.
package dotter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// Loader implements domain.ReferenceSource over a fixed list of
// repository-relative document paths.
type Loader struct {
	documents []string
}

// NewLoader creates a Loader scanning the given documents in order.
func NewLoader(documents []string) *Loader {
	return &Loader{documents: documents}
}

// ReferencedSources returns the deduplicated union of files-table keys
// across all documents, sorted for stable output. A missing document is
// skipped; a document that exists but cannot be read or parsed is a hard
// error that aborts the validation run.
func (l *Loader) ReferencedSources(root string) ([]string, error) {
	seen := make(map[string]bool)

	for _, doc := range l.documents {
		path := filepath.Join(root, doc)

		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", doc, err)
		}

		var document map[string]any
		if err := toml.Unmarshal(data, &document); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", doc, err)
		}

		// Each top-level section may carry a files table mapping source
		// paths to deploy targets. Anything else (variables, packages,
		// scalar keys) is ignored.
		for _, section := range document {
			table, ok := section.(map[string]any)
			if !ok {
				continue
			}
			files, ok := table["files"].(map[string]any)
			if !ok {
				continue
			}
			for source := range files {
				seen[source] = true
			}
		}
	}

	sources := make([]string, 0, len(seen))
	for source := range seen {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources, nil
}
