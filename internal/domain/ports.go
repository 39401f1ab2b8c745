package domain

// RepoInspector answers read-only queries against the version-control
// system. Boolean queries collapse any underlying failure to false, and a
// non-zero listing exit collapses to an empty slice, so a missing git
// binary or a directory that is not a repository degrades to "nothing to
// check" instead of aborting the run.
type RepoInspector interface {
	// IsTracked reports whether path is registered as a tracked file,
	// relative to the repository root.
	IsTracked(path string) bool

	// IsIgnored reports whether path matches the ignore rules.
	IsIgnored(path string) bool

	// ListTracked enumerates every tracked file, root-relative, non-empty
	// lines only. Failing to invoke the tool at all is a hard error.
	ListTracked() ([]string, error)
}

// ReferenceSource yields the set of source paths referenced by the
// repository's configuration documents.
type ReferenceSource interface {
	// ReferencedSources returns the deduplicated, sorted union of source
	// paths across all documents. Missing documents are skipped; a
	// document that exists but fails to parse is a hard error.
	ReferencedSources(root string) ([]string, error)
}

// SettingsLoader loads tool settings from the repository.
type SettingsLoader interface {
	Load(root string) (Settings, error)
}

// Logger receives verbose diagnostic lines during rule execution.
type Logger interface {
	Infof(format string, args ...any)
}

// NopLogger discards all diagnostics. Injected when --verbose is off.
type NopLogger struct{}

func (NopLogger) Infof(string, ...any) {}
