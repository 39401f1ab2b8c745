// Package gitrepo implements domain.RepoInspector by shelling out to the
// git binary, matching what a user would run by hand.
package gitrepo

import (
	"fmt"
	"os/exec"
	"strings"
)

// Inspector queries git for one repository. Queries are synchronous and
// uncached; each invocation releases its subprocess before returning.
type Inspector struct {
	dir string
}

// New creates an Inspector rooted at dir.
func New(dir string) *Inspector {
	return &Inspector{dir: dir}
}

// IsTracked reports whether git has path registered as a tracked file.
// Any failure, including a missing git binary or a directory that is not
// a repository, collapses to false.
func (g *Inspector) IsTracked(path string) bool {
	cmd := exec.Command("git", "ls-files", "--error-unmatch", path)
	cmd.Dir = g.dir
	return cmd.Run() == nil
}

// IsIgnored reports whether path matches the repository's ignore rules.
// Same failure policy as IsTracked.
func (g *Inspector) IsIgnored(path string) bool {
	cmd := exec.Command("git", "check-ignore", path)
	cmd.Dir = g.dir
	return cmd.Run() == nil
}

// ListTracked enumerates every tracked file, root-relative. A non-zero
// git exit (e.g. not a repository) collapses to an empty list so rules
// degrade to "nothing to check"; failing to invoke git at all is a hard
// error that aborts the run.
func (g *Inspector) ListTracked() ([]string, error) {
	cmd := exec.Command("git", "ls-files")
	cmd.Dir = g.dir

	out, err := cmd.Output()
	if err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			return nil, nil
		}
		return nil, fmt.Errorf("running git ls-files: %w", err)
	}

	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}
