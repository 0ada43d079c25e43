package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// User-facing status lines. Both go to stderr: stdout carries only the
// report itself.

var userErr io.Writer = os.Stderr

// SetUserOutput redirects user-facing messages (useful for testing).
// A nil writer restores stderr.
func SetUserOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	userErr = w
}

func marker(w io.Writer, symbol string, color lipgloss.Color) string {
	return lipgloss.NewRenderer(w).NewStyle().Foreground(color).Bold(true).Render(symbol)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	fmt.Fprintf(userErr, marker(userErr, "⚠", lipgloss.Color("11"))+" "+format+"\n", args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	fmt.Fprintf(userErr, marker(userErr, "✗", lipgloss.Color("9"))+" "+format+"\n", args...)
}
