package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrminor/dotlint/internal/domain"
)

func TestFilesTracked_TrackedFileProducesNoIssue(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "hello")

	rule := NewFilesTracked(
		&fakeRefs{sources: []string{"a.txt"}},
		&fakeInspector{tracked: map[string]bool{"a.txt": true}},
		domain.NopLogger{},
	)
	result, err := rule.Evaluate(testConfig(root))
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Empty(t, result.Issues)
}

func TestFilesTracked_MissingFileIsErrorWithoutFix(t *testing.T) {
	root := t.TempDir()

	rule := NewFilesTracked(
		&fakeRefs{sources: []string{"a.txt"}},
		&fakeInspector{},
		domain.NopLogger{},
	)
	result, err := rule.Evaluate(testConfig(root))
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, domain.SeverityError, issue.Severity)
	assert.Contains(t, issue.Message, "missing")
	assert.Equal(t, "a.txt", issue.File)
	assert.Empty(t, issue.FixSuggestion)
}

func TestFilesTracked_MissingFileNeverAlsoReportedUntracked(t *testing.T) {
	root := t.TempDir()

	// Inspector would also report the file as ignored, but existence is
	// checked first and short-circuits.
	rule := NewFilesTracked(
		&fakeRefs{sources: []string{"a.txt"}},
		&fakeInspector{ignored: map[string]bool{"a.txt": true}},
		domain.NopLogger{},
	)
	result, err := rule.Evaluate(testConfig(root))
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Message, "missing")
}

func TestFilesTracked_IgnoredFileIsErrorWithNegationFix(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.txt", "hello")

	rule := NewFilesTracked(
		&fakeRefs{sources: []string{"b.txt"}},
		&fakeInspector{ignored: map[string]bool{"b.txt": true}},
		domain.NopLogger{},
	)
	result, err := rule.Evaluate(testConfig(root))
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, domain.SeverityError, issue.Severity)
	assert.Contains(t, issue.Message, "ignored by git")
	assert.Contains(t, issue.FixSuggestion, "!b.txt")
}

func TestFilesTracked_UntrackedFileIsWarningAndStillPasses(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "c.txt", "hello")

	rule := NewFilesTracked(
		&fakeRefs{sources: []string{"c.txt"}},
		&fakeInspector{},
		domain.NopLogger{},
	)
	result, err := rule.Evaluate(testConfig(root))
	require.NoError(t, err)

	assert.True(t, result.Passed, "warning-only issue sets still pass")
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, domain.SeverityWarning, issue.Severity)
	assert.Contains(t, issue.Message, "not tracked")
	assert.Contains(t, issue.FixSuggestion, "git add c.txt")
}

func TestFilesTracked_MixedSeveritiesFail(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "c.txt", "hello")

	rule := NewFilesTracked(
		&fakeRefs{sources: []string{"a.txt", "c.txt"}},
		&fakeInspector{},
		domain.NopLogger{},
	)
	result, err := rule.Evaluate(testConfig(root))
	require.NoError(t, err)

	assert.False(t, result.Passed, "an error-severity issue always fails the rule")
	assert.Len(t, result.Issues, 2)
}

func TestFilesTracked_ReferenceErrorAbortsRule(t *testing.T) {
	rule := NewFilesTracked(
		&fakeRefs{err: errors.New("parsing .dotter/global.toml: bare key")},
		&fakeInspector{},
		domain.NopLogger{},
	)
	result, err := rule.Evaluate(testConfig(t.TempDir()))

	require.Error(t, err)
	assert.Nil(t, result)
}
