// Package style renders the CLI's terminal output.
//
// Colors adapt to light and dark terminals. When stdout is not a terminal,
// or NO_COLOR is set, Setup drops to plain ASCII so output stays readable
// in logs and pipes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(BuiltColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(FailedColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(StaleColor).
			Bold(true)

	NameStyle = lipgloss.NewStyle().
			Foreground(BundleNameColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// Setup picks the color profile for f. Call it once before rendering.
func Setup(f *os.File) {
	if !ColorEnabled(f) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(f).EnvColorProfile())
}

// ColorEnabled reports whether styled output should be written to f.
func ColorEnabled(f *os.File) bool {
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Plain disables all color. Tests use it for stable output.
func Plain() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
