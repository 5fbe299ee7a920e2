package style

import "github.com/charmbracelet/lipgloss"

// Palette. Each color has a light and a dark terminal variant.
var (
	// HeadingColor is used for report titles.
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#E6EDF3"}
	// MutedColor is used for up-to-date and skipped bundles and file lists.
	MutedColor = lipgloss.AdaptiveColor{Light: "#656D76", Dark: "#8D96A0"}

	BuiltColor  = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"}
	StaleColor  = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"}
	FailedColor = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}

	BundleNameColor = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#58A6FF"}
	PathColor       = lipgloss.AdaptiveColor{Light: "#8250DF", Dark: "#BC8CFF"}
)
