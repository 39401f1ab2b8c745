package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")) // blue

// VerboseLogger implements domain.Logger by writing styled diagnostic
// lines to w.
type VerboseLogger struct {
	w io.Writer
}

func NewVerboseLogger(w io.Writer) *VerboseLogger {
	return &VerboseLogger{w: w}
}

func (l *VerboseLogger) Infof(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.w, verboseStyle.Render("  "+line))
}
