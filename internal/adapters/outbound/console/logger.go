// Package console renders run progress and reports for a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/abdidvp/appatch/internal/domain"
)

var (
	infoColor  = lipgloss.Color("#8B949E")
	stepColor  = lipgloss.Color("#D97706")
	warnColor  = lipgloss.Color("#F59E0B")
	errorColor = lipgloss.Color("#EF4444")
	okColor    = lipgloss.Color("#22C55E")
)

var levelStyles = map[domain.Level]lipgloss.Style{
	domain.LevelInfo:  lipgloss.NewStyle().Foreground(infoColor),
	domain.LevelStep:  lipgloss.NewStyle().Foreground(stepColor).Bold(true),
	domain.LevelWarn:  lipgloss.NewStyle().Foreground(warnColor).Bold(true),
	domain.LevelError: lipgloss.NewStyle().Foreground(errorColor).Bold(true),
}

// Logger implements domain.Logger, writing "[LEVEL] message" lines.
type Logger struct {
	w     io.Writer
	color bool
}

// New creates a Logger writing to w. Tags are coloured only when w is a terminal.
func New(w io.Writer) *Logger {
	return &Logger{w: w, color: IsTTY(w)}
}

func (l *Logger) Log(level domain.Level, format string, args ...any) {
	tag := "[" + string(level) + "]"
	if l.color {
		if st, ok := levelStyles[level]; ok {
			tag = st.Render(tag)
		}
	}
	fmt.Fprintf(l.w, "%s %s\n", tag, fmt.Sprintf(format, args...))
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
