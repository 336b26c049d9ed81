// Package ui holds the terminal presentation helpers for the CLI:
// colored text, rules and boxes, and the interactive prompts used by the
// init wizard. None of it touches the API client contracts.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color output is disabled when stdout is not a terminal or NO_COLOR is
// set, so piped output stays clean.
var colorEnabled = os.Getenv("NO_COLOR") == "" &&
	(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

var (
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	grayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
)

func render(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

func Cyan(s string) string   { return render(cyanStyle, s) }
func Gray(s string) string   { return render(grayStyle, s) }
func Green(s string) string  { return render(greenStyle, s) }
func Yellow(s string) string { return render(yellowStyle, s) }
func Red(s string) string    { return render(redStyle, s) }
func Bold(s string) string   { return render(boldStyle, s) }

// Rule returns a cyan horizontal rule of the given width.
func Rule(width int) string {
	return Cyan(strings.Repeat("━", width))
}

// Box renders multi-line text inside a bordered box, used for tweet
// templates the operator is asked to post verbatim.
func Box(text string) string {
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	var b strings.Builder
	b.WriteString(Gray("  ┌" + strings.Repeat("─", width+2) + "┐\n"))
	for _, line := range lines {
		b.WriteString(Gray("  │ ") + line + strings.Repeat(" ", width-len(line)) + Gray(" │\n"))
	}
	b.WriteString(Gray("  └" + strings.Repeat("─", width+2) + "┘"))
	return b.String()
}
